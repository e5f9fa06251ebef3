package loan

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"trustlend/internal/domain/errs"
	"trustlend/internal/domain/event"
	domain "trustlend/internal/domain/loan"
	"trustlend/internal/domain/platform"
	"trustlend/internal/domain/policy"
	"trustlend/internal/domain/uow"
	"trustlend/internal/usecase"
)

type Usecase struct{ d usecase.Deps }

func NewUsecase(d usecase.Deps) *Usecase { return &Usecase{d: d.WithDefaults()} }

// Originate issues a loan on admin's platform. No funds move here:
// disbursement happens outside the ledger.
func (u *Usecase) Originate(ctx context.Context, borrower, admin string, amount uint64) (*LoanDTO, error) {
	const op = "originate"
	var l *domain.Loan

	err := u.d.UoW.WithinPlatformTx(ctx, admin, func(r uow.Repos, p *platform.State) error {
		rec, err := r.Trust.GetForUpdate(ctx, borrower)
		if err != nil {
			return err
		}
		if amount < policy.MinLoanAmount || amount > policy.MaxLoanAmount {
			return fmt.Errorf("%w: %d outside [%d, %d]", errs.ErrInvalidAmount, amount, policy.MinLoanAmount, policy.MaxLoanAmount)
		}
		if p.IsPaused {
			return fmt.Errorf("%w: platform %s is paused", errs.ErrUnauthorized, admin)
		}
		if limit := rec.MaxLoanAmount(); amount > limit {
			return fmt.Errorf("%w: %d exceeds limit %d", errs.ErrInsufficientTrustScore, amount, limit)
		}

		now := u.d.Clock()
		l = domain.New(admin, p.NextLoanID(amount), borrower, amount, now)
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		rec.ApplyLoanIssued(amount)
		if err := r.Trust.Save(ctx, rec); err != nil {
			return err
		}
		return r.Platforms.Save(ctx, p)
	})
	if err != nil {
		return nil, u.d.Reject(op, err,
			zap.String("borrower", borrower),
			zap.String("platform", admin),
			zap.Uint64("amount", amount))
	}

	u.d.Metrics.LoansOriginated.Inc()
	u.d.Metrics.LoanVolumeTotal.Add(float64(amount))
	zap.L().Info("loan originated",
		zap.String("platform", admin),
		zap.Uint64("loan_id", l.LoanID),
		zap.String("borrower", borrower),
		zap.Uint64("amount", amount))
	u.d.Emit(ctx, event.TypeLoanCreated, admin, event.LoanCreated{
		LoanID:   l.LoanID,
		Borrower: borrower,
		Amount:   l.Amount,
		DueDate:  l.DueDate,
	})

	dto := toDTO(l)
	return &dto, nil
}

// Repay settles an active loan in full: principal plus interest move from
// the borrower to the platform admin, and an on-time repayment raises the
// borrower's score.
func (u *Usecase) Repay(ctx context.Context, borrower, admin string, loanID uint64) (*RepaymentDTO, error) {
	const op = "repay"
	var out *RepaymentDTO

	err := u.d.UoW.WithinPlatformTx(ctx, admin, func(r uow.Repos, p *platform.State) error {
		l, err := r.Loans.GetByLoanIDForUpdate(ctx, admin, loanID)
		if err != nil {
			return err
		}
		if l.Borrower != borrower {
			return fmt.Errorf("%w: loan %d belongs to another borrower", errs.ErrUnauthorized, loanID)
		}
		if l.Status != domain.StatusActive {
			return fmt.Errorf("%w: loan %d is %s", errs.ErrAlreadyRepaid, loanID, l.Status)
		}

		total := l.TotalRepayment()
		if err := r.Ledger.Transfer(ctx, borrower, admin, total); err != nil {
			return err
		}

		now := u.d.Clock()
		l.Status = domain.StatusRepaid
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		rec, err := r.Trust.GetForUpdate(ctx, borrower)
		if err != nil {
			return err
		}
		oldScore := rec.Score
		onTime := l.OnTime(now)
		rec.ApplyRepayment(total, onTime, now)
		if err := r.Trust.Save(ctx, rec); err != nil {
			return err
		}

		p.TreasuryBalance += total
		if err := r.Platforms.Save(ctx, p); err != nil {
			return err
		}

		out = &RepaymentDTO{
			Loan:     toDTO(l),
			Paid:     total,
			OnTime:   onTime,
			OldScore: oldScore,
			NewScore: rec.Score,
			Tier:     string(rec.Tier),
		}
		return nil
	})
	if err != nil {
		return nil, u.d.Reject(op, err,
			zap.String("borrower", borrower),
			zap.String("platform", admin),
			zap.Uint64("loan_id", loanID))
	}

	u.d.Metrics.RepaymentsTotal.WithLabelValues(strconv.FormatBool(out.OnTime)).Inc()
	zap.L().Info("loan repaid",
		zap.String("platform", admin),
		zap.Uint64("loan_id", loanID),
		zap.Uint64("paid", out.Paid),
		zap.Bool("on_time", out.OnTime))
	u.d.Emit(ctx, event.TypeLoanRepaid, admin, event.LoanRepaid{
		LoanID:   loanID,
		Borrower: borrower,
		Amount:   out.Loan.Amount,
		Interest: out.Loan.InterestAmount,
	})
	u.d.Emit(ctx, event.TypeTrustScoreUpdated, admin, event.TrustScoreUpdated{
		User:     borrower,
		OldScore: out.OldScore,
		NewScore: out.NewScore,
		Tier:     out.Tier,
	})
	return out, nil
}

// LoansOf lists a borrower's loan ids on the platform in issuance order.
func (u *Usecase) LoansOf(ctx context.Context, borrower, admin string) ([]uint64, error) {
	if _, err := u.d.Reads.Platforms.Get(ctx, admin); err != nil {
		return nil, err
	}
	return u.d.Reads.Loans.ListIDsByBorrower(ctx, admin, borrower)
}

func (u *Usecase) LoanDetails(ctx context.Context, loanID uint64, admin string) (*LoanDTO, error) {
	if _, err := u.d.Reads.Platforms.Get(ctx, admin); err != nil {
		return nil, err
	}
	l, err := u.d.Reads.Loans.GetByLoanID(ctx, admin, loanID)
	if err != nil {
		return nil, err
	}
	dto := toDTO(l)
	return &dto, nil
}
