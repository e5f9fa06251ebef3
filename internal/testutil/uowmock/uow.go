package uowmock

import (
	"context"
	"errors"

	"trustlend/internal/domain/platform"
	"trustlend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn         func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinPlatformTxFn func(ctx context.Context, admin string, fn func(r uow.Repos, p *platform.State) error) error
}

// Convenience fluent setters
func New() *UoW { return &UoW{} }
func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) WithWithinPlatformTx(fn func(context.Context, string, func(uow.Repos, *platform.State) error) error) *UoW {
	m.WithinPlatformTxFn = fn
	return m
}
func (m *UoW) Reset() { *m = UoW{} }

// Passthrough runs every transaction body against repos, locking p for platform transactions.
func Passthrough(repos uow.Repos, p *platform.State) *UoW {
	return New().
		WithWithinTx(func(_ context.Context, fn func(uow.Repos) error) error { return fn(repos) }).
		WithWithinPlatformTx(func(_ context.Context, _ string, fn func(uow.Repos, *platform.State) error) error {
			return fn(repos, p)
		})
}

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinPlatformTx(ctx context.Context, admin string, fn func(r uow.Repos, p *platform.State) error) error {
	if m.WithinPlatformTxFn != nil {
		return m.WithinPlatformTxFn(ctx, admin, fn)
	}
	return errUnimplemented
}
