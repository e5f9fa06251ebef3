package platform

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"trustlend/internal/domain/errs"
	domain "trustlend/internal/domain/platform"
	"trustlend/internal/domain/staking"
	"trustlend/internal/domain/uow"
	"trustlend/internal/usecase"
)

type Usecase struct{ d usecase.Deps }

func NewUsecase(d usecase.Deps) *Usecase { return &Usecase{d: d.WithDefaults()} }

// Initialize creates admin's platform state and staking pool together.
func (u *Usecase) Initialize(ctx context.Context, admin string) (*PlatformDTO, error) {
	const op = "initialize"
	if admin == "" {
		return nil, u.d.Reject(op, fmt.Errorf("%w: empty admin", errs.ErrUnauthorized))
	}

	var (
		p    *domain.State
		pool *staking.Pool
	)
	err := u.d.UoW.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Platforms.Get(ctx, admin); err == nil {
			return fmt.Errorf("%w: platform %s", errs.ErrAlreadyInitialized, admin)
		} else if !errors.Is(err, errs.ErrNotInitialized) {
			return err
		}

		now := u.d.Clock()
		p = &domain.State{Admin: admin, CreatedAt: now}
		if err := r.Platforms.Create(ctx, p); err != nil {
			return err
		}
		pool = &staking.Pool{Admin: admin, LastRewardTime: now}
		return r.Staking.CreatePool(ctx, pool)
	})
	if err != nil {
		return nil, u.d.Reject(op, err, zap.String("platform", admin))
	}

	u.d.Metrics.PlatformsTotal.Inc()
	zap.L().Info("platform initialized", zap.String("platform", admin))
	return toDTO(p, pool), nil
}

// Pause stops new originations; repayments and staking keep working.
func (u *Usecase) Pause(ctx context.Context, caller, admin string) (*PlatformDTO, error) {
	return u.setPaused(ctx, "pause", caller, admin, true)
}

func (u *Usecase) Unpause(ctx context.Context, caller, admin string) (*PlatformDTO, error) {
	return u.setPaused(ctx, "unpause", caller, admin, false)
}

func (u *Usecase) setPaused(ctx context.Context, op, caller, admin string, paused bool) (*PlatformDTO, error) {
	var out *PlatformDTO
	err := u.d.UoW.WithinPlatformTx(ctx, admin, func(r uow.Repos, p *domain.State) error {
		if caller != p.Admin {
			return fmt.Errorf("%w: %s is not the admin of %s", errs.ErrUnauthorized, caller, admin)
		}
		p.IsPaused = paused
		if err := r.Platforms.Save(ctx, p); err != nil {
			return err
		}
		pool, err := r.Staking.GetPool(ctx, admin)
		if err != nil {
			return err
		}
		out = toDTO(p, pool)
		return nil
	})
	if err != nil {
		return nil, u.d.Reject(op, err, zap.String("caller", caller), zap.String("platform", admin))
	}
	zap.L().Info("platform pause flag set", zap.String("platform", admin), zap.Bool("paused", paused))
	return out, nil
}

// Get returns the platform aggregates.
func (u *Usecase) Get(ctx context.Context, admin string) (*PlatformDTO, error) {
	p, err := u.d.Reads.Platforms.Get(ctx, admin)
	if err != nil {
		return nil, err
	}
	pool, err := u.d.Reads.Staking.GetPool(ctx, admin)
	if err != nil {
		return nil, err
	}
	return toDTO(p, pool), nil
}

func toDTO(p *domain.State, pool *staking.Pool) *PlatformDTO {
	return &PlatformDTO{
		Admin:           p.Admin,
		TotalLoans:      p.TotalLoans,
		TotalVolume:     p.TotalVolume,
		TreasuryBalance: p.TreasuryBalance,
		IsPaused:        p.IsPaused,
		TotalStaked:     pool.TotalStaked,
		CreatedAt:       p.CreatedAt,
	}
}
