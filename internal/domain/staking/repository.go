package staking

import "context"

type Repository interface {
	CreatePool(ctx context.Context, p *Pool) error
	// GetPoolForUpdate returns errs.ErrNotInitialized when the platform has no pool.
	GetPoolForUpdate(ctx context.Context, admin string) (*Pool, error)
	GetPool(ctx context.Context, admin string) (*Pool, error)
	SavePool(ctx context.Context, p *Pool) error

	// GetEntry returns errs.ErrNotFound when the account never staked on the platform.
	GetEntry(ctx context.Context, admin, account string) (*Entry, error)
	GetEntryForUpdate(ctx context.Context, admin, account string) (*Entry, error)
	SaveEntry(ctx context.Context, e *Entry) error

	// SumStaked totals every entry of the platform; it must equal Pool.TotalStaked.
	SumStaked(ctx context.Context, admin string) (uint64, error)
}
