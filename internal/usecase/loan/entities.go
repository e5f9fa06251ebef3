package loan

import (
	"time"

	domain "trustlend/internal/domain/loan"
)

type LoanDTO struct {
	LoanID         uint64    `json:"loan_id"`
	Platform       string    `json:"platform"`
	Borrower       string    `json:"borrower"`
	Amount         uint64    `json:"amount"`
	InterestAmount uint64    `json:"interest_amount"`
	DueDate        time.Time `json:"due_date"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// RepaymentDTO reports a settled loan and its effect on the borrower's score.
type RepaymentDTO struct {
	Loan     LoanDTO `json:"loan"`
	Paid     uint64  `json:"paid"`
	OnTime   bool    `json:"on_time"`
	OldScore uint64  `json:"old_score"`
	NewScore uint64  `json:"new_score"`
	Tier     string  `json:"tier"`
}

func toDTO(l *domain.Loan) LoanDTO {
	return LoanDTO{
		LoanID:         l.LoanID,
		Platform:       l.PlatformAdmin,
		Borrower:       l.Borrower,
		Amount:         l.Amount,
		InterestAmount: l.InterestAmount,
		DueDate:        l.DueDate,
		Status:         string(l.Status),
		CreatedAt:      l.CreatedAt,
	}
}
