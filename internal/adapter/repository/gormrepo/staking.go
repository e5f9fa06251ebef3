package gormrepo

import (
	"context"

	"gorm.io/gorm"

	"trustlend/internal/domain/errs"
	"trustlend/internal/domain/staking"
)

type StakingRepository struct{ db *gorm.DB }

func NewStakingRepository(db *gorm.DB) *StakingRepository { return &StakingRepository{db: db} }

func (r *StakingRepository) CreatePool(ctx context.Context, p *staking.Pool) error {
	err := r.db.WithContext(ctx).Create(p).Error
	return duplicate(err, errs.ErrAlreadyInitialized, "staking pool %s", p.Admin)
}

func (r *StakingRepository) GetPool(ctx context.Context, admin string) (*staking.Pool, error) {
	var out staking.Pool
	if err := r.db.WithContext(ctx).Where("admin = ?", admin).First(&out).Error; err != nil {
		return nil, notFound(err, errs.ErrNotInitialized, "staking pool %s", admin)
	}
	return &out, nil
}

func (r *StakingRepository) GetPoolForUpdate(ctx context.Context, admin string) (*staking.Pool, error) {
	var out staking.Pool
	if err := r.db.WithContext(ctx).Clauses(forUpdate).Where("admin = ?", admin).First(&out).Error; err != nil {
		return nil, notFound(err, errs.ErrNotInitialized, "staking pool %s", admin)
	}
	return &out, nil
}

func (r *StakingRepository) SavePool(ctx context.Context, p *staking.Pool) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *StakingRepository) GetEntry(ctx context.Context, admin, account string) (*staking.Entry, error) {
	var out staking.Entry
	err := r.db.WithContext(ctx).
		Where("platform_admin = ? AND account = ?", admin, account).
		First(&out).Error
	if err != nil {
		return nil, notFound(err, errs.ErrNotFound, "stake of %s", account)
	}
	return &out, nil
}

func (r *StakingRepository) GetEntryForUpdate(ctx context.Context, admin, account string) (*staking.Entry, error) {
	var out staking.Entry
	err := r.db.WithContext(ctx).Clauses(forUpdate).
		Where("platform_admin = ? AND account = ?", admin, account).
		First(&out).Error
	if err != nil {
		return nil, notFound(err, errs.ErrNotFound, "stake of %s", account)
	}
	return &out, nil
}

// SaveEntry upserts; the first stake of an account creates its entry.
func (r *StakingRepository) SaveEntry(ctx context.Context, e *staking.Entry) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *StakingRepository) SumStaked(ctx context.Context, admin string) (uint64, error) {
	var sum uint64
	err := r.db.WithContext(ctx).Model(&staking.Entry{}).
		Where("platform_admin = ?", admin).
		Select("COALESCE(SUM(staked), 0)").
		Scan(&sum).Error
	return sum, err
}
