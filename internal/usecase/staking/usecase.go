package staking

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"trustlend/internal/domain/errs"
	"trustlend/internal/domain/event"
	"trustlend/internal/domain/platform"
	domain "trustlend/internal/domain/staking"
	"trustlend/internal/domain/uow"
	"trustlend/internal/usecase"
)

type Usecase struct{ d usecase.Deps }

func NewUsecase(d usecase.Deps) *Usecase { return &Usecase{d: d.WithDefaults()} }

// Stake locks amount from the caller into admin's pool and raises the
// caller's score and borrowing power.
func (u *Usecase) Stake(ctx context.Context, account, admin string, amount uint64) (*StakeResultDTO, error) {
	const op = "stake"
	var out *StakeResultDTO

	err := u.d.UoW.WithinPlatformTx(ctx, admin, func(r uow.Repos, _ *platform.State) error {
		rec, err := r.Trust.GetForUpdate(ctx, account)
		if err != nil {
			return err
		}
		if amount == 0 {
			return fmt.Errorf("%w: stake must be positive", errs.ErrInvalidAmount)
		}
		if err := r.Ledger.Transfer(ctx, account, admin, amount); err != nil {
			return err
		}

		pool, err := r.Staking.GetPoolForUpdate(ctx, admin)
		if err != nil {
			return err
		}
		entry, err := r.Staking.GetEntryForUpdate(ctx, admin, account)
		if errors.Is(err, errs.ErrNotFound) {
			entry = &domain.Entry{PlatformAdmin: admin, Account: account}
		} else if err != nil {
			return err
		}

		pool.Deposit(entry, amount)
		if err := r.Staking.SaveEntry(ctx, entry); err != nil {
			return err
		}
		if err := r.Staking.SavePool(ctx, pool); err != nil {
			return err
		}

		rec.ApplyStake(amount)
		if err := r.Trust.Save(ctx, rec); err != nil {
			return err
		}

		out = result(entry, pool, amount, rec.Score, string(rec.Tier), rec.StakedAmount)
		return nil
	})
	if err != nil {
		return nil, u.d.Reject(op, err,
			zap.String("account", account),
			zap.String("platform", admin),
			zap.Uint64("amount", amount))
	}

	u.d.Metrics.StakedAmountTotal.Add(float64(amount))
	zap.L().Info("stake deposited",
		zap.String("platform", admin),
		zap.String("account", account),
		zap.Uint64("amount", amount),
		zap.Uint64("staked", out.Staked))
	u.d.Emit(ctx, event.TypeStake, admin, event.Stake{
		User:        account,
		Amount:      amount,
		TotalStaked: out.Staked,
	})
	return out, nil
}

// Unstake queues amount for withdrawal. The funds stay with the platform
// until an operator pays them out, and the score keeps its staking bonus.
func (u *Usecase) Unstake(ctx context.Context, account, admin string, amount uint64) (*StakeResultDTO, error) {
	const op = "unstake"
	var out *StakeResultDTO

	err := u.d.UoW.WithinPlatformTx(ctx, admin, func(r uow.Repos, _ *platform.State) error {
		entry, err := r.Staking.GetEntryForUpdate(ctx, admin, account)
		if err != nil {
			return err
		}
		if amount == 0 {
			return fmt.Errorf("%w: unstake must be positive", errs.ErrInvalidAmount)
		}
		pool, err := r.Staking.GetPoolForUpdate(ctx, admin)
		if err != nil {
			return err
		}
		if err := pool.Withdraw(entry, amount); err != nil {
			return fmt.Errorf("%w: staked %d, requested %d", err, entry.Staked, amount)
		}
		if err := r.Staking.SaveEntry(ctx, entry); err != nil {
			return err
		}
		if err := r.Staking.SavePool(ctx, pool); err != nil {
			return err
		}

		rec, err := r.Trust.GetForUpdate(ctx, account)
		if err != nil {
			return err
		}
		rec.ApplyUnstake(amount)
		if err := r.Trust.Save(ctx, rec); err != nil {
			return err
		}

		out = result(entry, pool, amount, rec.Score, string(rec.Tier), rec.StakedAmount)
		return nil
	})
	if err != nil {
		return nil, u.d.Reject(op, err,
			zap.String("account", account),
			zap.String("platform", admin),
			zap.Uint64("amount", amount))
	}

	u.d.Metrics.UnstakedAmountTotal.Add(float64(amount))
	zap.L().Info("unstake queued",
		zap.String("platform", admin),
		zap.String("account", account),
		zap.Uint64("amount", amount),
		zap.Uint64("pending_withdrawal", out.PendingWithdrawal))
	return out, nil
}

// PendingWithdrawal is the amount queued for payout, 0 for accounts that never staked.
func (u *Usecase) PendingWithdrawal(ctx context.Context, account, admin string) (uint64, error) {
	e, err := u.StakeOf(ctx, account, admin)
	if err != nil {
		return 0, err
	}
	return e.PendingWithdrawal, nil
}

// StakeOf returns the account's stake entry; accounts that never staked get a zero entry.
func (u *Usecase) StakeOf(ctx context.Context, account, admin string) (*StakeDTO, error) {
	if _, err := u.d.Reads.Staking.GetPool(ctx, admin); err != nil {
		return nil, err
	}
	e, err := u.d.Reads.Staking.GetEntry(ctx, admin, account)
	if errors.Is(err, errs.ErrNotFound) {
		return &StakeDTO{Platform: admin, Account: account}, nil
	}
	if err != nil {
		return nil, err
	}
	dto := toStakeDTO(e)
	return &dto, nil
}

func (u *Usecase) Pool(ctx context.Context, admin string) (*PoolDTO, error) {
	p, err := u.d.Reads.Staking.GetPool(ctx, admin)
	if err != nil {
		return nil, err
	}
	return &PoolDTO{Admin: p.Admin, TotalStaked: p.TotalStaked, LastRewardTime: p.LastRewardTime}, nil
}

func toStakeDTO(e *domain.Entry) StakeDTO {
	return StakeDTO{
		Platform:          e.PlatformAdmin,
		Account:           e.Account,
		Staked:            e.Staked,
		Rewards:           e.Rewards,
		PendingWithdrawal: e.PendingWithdrawal,
	}
}

func result(e *domain.Entry, p *domain.Pool, amount, score uint64, tier string, stakedTotal uint64) *StakeResultDTO {
	return &StakeResultDTO{
		StakeDTO:    toStakeDTO(e),
		Amount:      amount,
		PoolTotal:   p.TotalStaked,
		Score:       score,
		Tier:        tier,
		StakedTotal: stakedTotal,
	}
}
