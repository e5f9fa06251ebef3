package gormrepo

import (
	"context"

	"gorm.io/gorm"

	"trustlend/internal/domain/errs"
	loanDomain "trustlend/internal/domain/loan"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	err := r.db.WithContext(ctx).Create(l).Error
	return duplicate(err, errs.ErrAlreadyInitialized, "loan %d on platform %s", l.LoanID, l.PlatformAdmin)
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, admin string, loanID uint64) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	err := r.db.WithContext(ctx).
		Where("platform_admin = ? AND loan_id = ?", admin, loanID).
		First(&out).Error
	if err != nil {
		return nil, notFound(err, errs.ErrNotFound, "loan %d", loanID)
	}
	return &out, nil
}

func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, admin string, loanID uint64) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	err := r.db.WithContext(ctx).Clauses(forUpdate).
		Where("platform_admin = ? AND loan_id = ?", admin, loanID).
		First(&out).Error
	if err != nil {
		return nil, notFound(err, errs.ErrNotFound, "loan %d", loanID)
	}
	return &out, nil
}

func (r *LoanRepository) ListIDsByBorrower(ctx context.Context, admin, borrower string) ([]uint64, error) {
	ids := []uint64{}
	err := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("platform_admin = ? AND borrower = ?", admin, borrower).
		Order("loan_id ASC").
		Pluck("loan_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
