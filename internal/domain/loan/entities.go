package loan

import (
	"time"

	"trustlend/internal/domain/policy"
)

type Status string

const (
	StatusActive Status = "active"
	StatusRepaid Status = "repaid"
	// StatusDefaulted is reserved; no operation moves a loan into it.
	StatusDefaulted Status = "defaulted"
)

// Table: loans. LoanID is the platform-scoped sequence number handed to
// borrowers; ID is the storage key.
type Loan struct {
	ID             uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	PlatformAdmin  string    `gorm:"column:platform_admin;size:66;not null;uniqueIndex:ux_loans_platform_loan_id;index:idx_loans_platform_borrower,priority:1" json:"platform"`
	LoanID         uint64    `gorm:"column:loan_id;not null;uniqueIndex:ux_loans_platform_loan_id" json:"loan_id"`
	Borrower       string    `gorm:"column:borrower;size:66;not null;index:idx_loans_platform_borrower,priority:2" json:"borrower"`
	Amount         uint64    `gorm:"column:amount;not null" json:"amount"`
	InterestAmount uint64    `gorm:"column:interest_amount;not null" json:"interest_amount"`
	DueDate        time.Time `gorm:"column:due_date;not null" json:"due_date"`
	Status         Status    `gorm:"column:status;size:16;not null;default:'active'" json:"status"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// New prices a loan issued at now: flat interest and a fixed term.
func New(platformAdmin string, loanID uint64, borrower string, amount uint64, now time.Time) *Loan {
	return &Loan{
		PlatformAdmin:  platformAdmin,
		LoanID:         loanID,
		Borrower:       borrower,
		Amount:         amount,
		InterestAmount: policy.Interest(amount),
		DueDate:        now.Add(policy.LoanDuration),
		Status:         StatusActive,
		CreatedAt:      now,
	}
}

// TotalRepayment is principal plus interest.
func (l *Loan) TotalRepayment() uint64 { return l.Amount + l.InterestAmount }

// OnTime reports whether a repayment at t meets the due date (inclusive).
func (l *Loan) OnTime(t time.Time) bool { return !t.After(l.DueDate) }
