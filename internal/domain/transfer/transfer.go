package transfer

import (
	"context"
	"time"
)

// Transferer moves value between two accounts. A failed transfer must leave
// both balances untouched; the caller aborts its whole operation on error.
type Transferer interface {
	Transfer(ctx context.Context, from, to string, amount uint64) error
}

// Ledger is the host-side balance book behind Transferer.
type Ledger interface {
	Transferer
	Credit(ctx context.Context, account string, amount uint64) error
	Balance(ctx context.Context, account string) (uint64, error)
}

// Table: accounts
type Account struct {
	Account   string    `gorm:"column:account;size:66;primaryKey" json:"account"`
	Balance   uint64    `gorm:"column:balance;not null;default:0" json:"balance"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Account) TableName() string { return "accounts" }
