package event

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeLoanCreated       Type = "LoanCreated"
	TypeLoanRepaid        Type = "LoanRepaid"
	TypeTrustScoreUpdated Type = "TrustScoreUpdated"
	TypeStake             Type = "Stake"
)

type LoanCreated struct {
	LoanID   uint64    `json:"loan_id"`
	Borrower string    `json:"borrower"`
	Amount   uint64    `json:"amount"`
	DueDate  time.Time `json:"due_date"`
}

type LoanRepaid struct {
	LoanID   uint64 `json:"loan_id"`
	Borrower string `json:"borrower"`
	Amount   uint64 `json:"amount"`
	Interest uint64 `json:"interest"`
}

type TrustScoreUpdated struct {
	User     string `json:"user"`
	OldScore uint64 `json:"old_score"`
	NewScore uint64 `json:"new_score"`
	Tier     string `json:"tier"`
}

// Stake carries the user's staked total after the deposit.
type Stake struct {
	User        string `json:"user"`
	Amount      uint64 `json:"amount"`
	TotalStaked uint64 `json:"total_staked"`
}

// Event is the envelope written to a Sink.
type Event struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Platform  string    `json:"platform,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

func New(typ Type, platform string, data any, at time.Time) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      typ,
		Platform:  platform,
		Timestamp: at.UTC(),
		Data:      data,
	}
}

// Sink receives notifications of committed operations. Emit must not block
// for long and has no way to fail the operation that produced the event.
type Sink interface {
	Emit(ctx context.Context, e Event)
}

// Nop discards everything.
type Nop struct{}

func (Nop) Emit(context.Context, Event) {}
