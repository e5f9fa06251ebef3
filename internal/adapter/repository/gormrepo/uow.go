package gormrepo

import (
	"context"

	"gorm.io/gorm"

	"trustlend/internal/domain/platform"
	"trustlend/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

// NewRepos binds a repository set to db outside any transaction. Use cases
// read through it; writes go through the unit of work.
func NewRepos(db *gorm.DB) uow.Repos { return reposFor(db) }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Trust:     &TrustRepository{db: tx},
		Loans:     &LoanRepository{db: tx},
		Platforms: &PlatformRepository{db: tx},
		Staking:   &StakingRepository{db: tx},
		Ledger:    &AccountLedger{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinPlatformTx(ctx context.Context, admin string, fn func(r uow.Repos, p *platform.State) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the platform row up-front so operations on one platform serialize
		p, err := r.Platforms.GetForUpdate(ctx, admin)
		if err != nil {
			return err
		}
		return fn(r, p)
	})
}
