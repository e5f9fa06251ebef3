package gormrepo

import (
	"context"

	"gorm.io/gorm"

	"trustlend/internal/domain/errs"
	"trustlend/internal/domain/trust"
)

type TrustRepository struct{ db *gorm.DB }

func NewTrustRepository(db *gorm.DB) *TrustRepository { return &TrustRepository{db: db} }

func (r *TrustRepository) Create(ctx context.Context, rec *trust.Record) error {
	err := r.db.WithContext(ctx).Create(rec).Error
	return duplicate(err, errs.ErrAlreadyInitialized, "trust record for %s", rec.Account)
}

func (r *TrustRepository) Get(ctx context.Context, account string) (*trust.Record, error) {
	var out trust.Record
	err := r.db.WithContext(ctx).Where("account = ?", account).First(&out).Error
	if err != nil {
		return nil, notFound(err, errs.ErrNotFound, "trust record for %s", account)
	}
	return &out, nil
}

func (r *TrustRepository) GetForUpdate(ctx context.Context, account string) (*trust.Record, error) {
	var out trust.Record
	err := r.db.WithContext(ctx).Clauses(forUpdate).Where("account = ?", account).First(&out).Error
	if err != nil {
		return nil, notFound(err, errs.ErrNotFound, "trust record for %s", account)
	}
	return &out, nil
}

func (r *TrustRepository) Save(ctx context.Context, rec *trust.Record) error {
	return r.db.WithContext(ctx).Save(rec).Error
}
