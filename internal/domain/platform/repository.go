package platform

import "context"

type Repository interface {
	// Create fails if the admin already runs a platform.
	Create(ctx context.Context, s *State) error
	// Get returns errs.ErrNotInitialized when there is no platform for admin.
	Get(ctx context.Context, admin string) (*State, error)
	// GetForUpdate is Get holding the platform row lock; every mutation of a
	// platform's records goes through it so they serialize.
	GetForUpdate(ctx context.Context, admin string) (*State, error)
	Save(ctx context.Context, s *State) error
}
