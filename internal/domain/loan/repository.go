package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	Save(ctx context.Context, l *Loan) error

	// GetByLoanID returns errs.ErrNotFound when the platform has no such loan.
	GetByLoanID(ctx context.Context, platformAdmin string, loanID uint64) (*Loan, error)
	// GetByLoanIDForUpdate locks the loan row for the rest of the transaction.
	GetByLoanIDForUpdate(ctx context.Context, platformAdmin string, loanID uint64) (*Loan, error)

	// ListIDsByBorrower returns the borrower's loan ids in issuance order.
	ListIDsByBorrower(ctx context.Context, platformAdmin, borrower string) ([]uint64, error)
}
