package gormrepo

import (
	"context"

	"gorm.io/gorm"

	"trustlend/internal/domain/errs"
	"trustlend/internal/domain/platform"
)

type PlatformRepository struct{ db *gorm.DB }

func NewPlatformRepository(db *gorm.DB) *PlatformRepository { return &PlatformRepository{db: db} }

func (r *PlatformRepository) Create(ctx context.Context, s *platform.State) error {
	err := r.db.WithContext(ctx).Create(s).Error
	return duplicate(err, errs.ErrAlreadyInitialized, "platform %s", s.Admin)
}

func (r *PlatformRepository) Get(ctx context.Context, admin string) (*platform.State, error) {
	var out platform.State
	if err := r.db.WithContext(ctx).Where("admin = ?", admin).First(&out).Error; err != nil {
		return nil, notFound(err, errs.ErrNotInitialized, "platform %s", admin)
	}
	return &out, nil
}

func (r *PlatformRepository) GetForUpdate(ctx context.Context, admin string) (*platform.State, error) {
	var out platform.State
	if err := r.db.WithContext(ctx).Clauses(forUpdate).Where("admin = ?", admin).First(&out).Error; err != nil {
		return nil, notFound(err, errs.ErrNotInitialized, "platform %s", admin)
	}
	return &out, nil
}

func (r *PlatformRepository) Save(ctx context.Context, s *platform.State) error {
	return r.db.WithContext(ctx).Save(s).Error
}
