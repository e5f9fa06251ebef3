package trust

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"trustlend/internal/domain/errs"
	domain "trustlend/internal/domain/trust"
	"trustlend/internal/domain/uow"
	"trustlend/internal/usecase"
)

type Usecase struct {
	d   usecase.Deps
	age domain.AgeOracle
}

func NewUsecase(d usecase.Deps, age domain.AgeOracle) *Usecase {
	return &Usecase{d: d.WithDefaults(), age: age}
}

// Register opens the caller's trust record. The initial score grows with
// wallet age, one point per 30 days.
func (u *Usecase) Register(ctx context.Context, account string) (*RecordDTO, error) {
	const op = "register"
	if account == "" {
		return nil, u.d.Reject(op, fmt.Errorf("%w: empty account", errs.ErrUnauthorized))
	}

	if _, err := u.d.Reads.Trust.Get(ctx, account); err == nil {
		return nil, u.d.Reject(op, fmt.Errorf("%w: trust record for %s", errs.ErrAlreadyInitialized, account))
	} else if !errors.Is(err, errs.ErrNotFound) {
		return nil, u.d.Reject(op, err)
	}

	age, err := u.age.WalletAge(ctx, account)
	if err != nil {
		return nil, u.d.Reject(op, fmt.Errorf("wallet age: %w", err), zap.String("account", account))
	}

	var rec *domain.Record
	err = u.d.UoW.WithinTx(ctx, func(r uow.Repos) error {
		rec = domain.NewRecord(account, age, u.d.Clock())
		return r.Trust.Create(ctx, rec)
	})
	if err != nil {
		return nil, u.d.Reject(op, err, zap.String("account", account))
	}

	u.d.Metrics.RegistrationsTotal.Inc()
	zap.L().Info("trust record registered",
		zap.String("account", account),
		zap.Uint64("score", rec.Score),
		zap.Uint64("wallet_age", age))
	return toRecordDTO(rec), nil
}

func (u *Usecase) ScoreOf(ctx context.Context, account string) (*ScoreDTO, error) {
	rec, err := u.d.Reads.Trust.Get(ctx, account)
	if err != nil {
		return nil, err
	}
	return &ScoreDTO{Account: rec.Account, Score: rec.Score, Tier: string(rec.Tier)}, nil
}

func (u *Usecase) MaxLoanAmount(ctx context.Context, account string) (uint64, error) {
	rec, err := u.d.Reads.Trust.Get(ctx, account)
	if err != nil {
		return 0, err
	}
	return rec.MaxLoanAmount(), nil
}

// Record returns the full trust profile.
func (u *Usecase) Record(ctx context.Context, account string) (*RecordDTO, error) {
	rec, err := u.d.Reads.Trust.Get(ctx, account)
	if err != nil {
		return nil, err
	}
	return toRecordDTO(rec), nil
}

func toRecordDTO(r *domain.Record) *RecordDTO {
	return &RecordDTO{
		Account:       r.Account,
		Score:         r.Score,
		Tier:          string(r.Tier),
		LoanCount:     r.LoanCount,
		TotalBorrowed: r.TotalBorrowed,
		TotalRepaid:   r.TotalRepaid,
		Defaults:      r.Defaults,
		StakedAmount:  r.StakedAmount,
		WalletAge:     r.WalletAge,
		LastUpdated:   r.LastUpdated,
		MaxLoanAmount: r.MaxLoanAmount(),
	}
}
