package uow

import (
	"context"

	"trustlend/internal/domain/loan"
	"trustlend/internal/domain/platform"
	"trustlend/internal/domain/staking"
	"trustlend/internal/domain/transfer"
	"trustlend/internal/domain/trust"
)

// Repos are bound to one transaction.
type Repos struct {
	Trust     trust.Repository
	Loans     loan.Repository
	Platforms platform.Repository
	Staking   staking.Repository
	Ledger    transfer.Ledger
}

type UnitOfWork interface {
	// plain tx: commits when fn returns nil, rolls back otherwise
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the platform row first, then pass it in
	WithinPlatformTx(ctx context.Context, admin string, fn func(r Repos, p *platform.State) error) error
}
