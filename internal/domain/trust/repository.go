package trust

import "context"

type Repository interface {
	// Create inserts a new record; it fails if the account already has one.
	Create(ctx context.Context, r *Record) error
	// Get returns errs.ErrNotFound when the account has no record.
	Get(ctx context.Context, account string) (*Record, error)
	// GetForUpdate is Get with a row lock held until the transaction ends.
	GetForUpdate(ctx context.Context, account string) (*Record, error)
	Save(ctx context.Context, r *Record) error
}

// AgeOracle reports how long an account has been observed, in seconds.
type AgeOracle interface {
	WalletAge(ctx context.Context, account string) (uint64, error)
}
