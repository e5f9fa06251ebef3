package gormrepo

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	"trustlend/internal/domain/errs"
	"trustlend/internal/domain/transfer"
)

// AccountLedger keeps host balances in the accounts table. Bound to a
// transaction it makes every transfer commit or roll back with the operation
// that requested it.
type AccountLedger struct{ db *gorm.DB }

func NewAccountLedger(db *gorm.DB) *AccountLedger { return &AccountLedger{db: db} }

var _ transfer.Ledger = (*AccountLedger)(nil)

// MaxBalance bounds every stored balance; database/sql rejects uint64
// values with the high bit set.
const MaxBalance uint64 = math.MaxInt64

func (l *AccountLedger) Balance(ctx context.Context, account string) (uint64, error) {
	var a transfer.Account
	err := l.db.WithContext(ctx).Where("account = ?", account).First(&a).Error
	if err != nil {
		return 0, notFound(err, errs.ErrNotFound, "account %s", account)
	}
	return a.Balance, nil
}

// Credit mints amount into account, creating it when missing.
func (l *AccountLedger) Credit(ctx context.Context, account string, amount uint64) error {
	if amount == 0 {
		return fmt.Errorf("%w: credit must be positive", errs.ErrInvalidAmount)
	}
	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a, err := lockOrNew(tx, account)
		if err != nil {
			return err
		}
		if amount > MaxBalance-a.Balance {
			return fmt.Errorf("%w: %s would exceed the maximum balance", errs.ErrInvalidAmount, account)
		}
		a.Balance += amount
		return tx.Save(a).Error
	})
}

// Transfer moves amount from one account to another. A transfer to self
// still requires from to hold amount and leaves the balance unchanged.
func (l *AccountLedger) Transfer(ctx context.Context, from, to string, amount uint64) error {
	if amount == 0 {
		return fmt.Errorf("%w: transfer must be positive", errs.ErrInvalidAmount)
	}
	// nested Transaction becomes a savepoint when l is already tx-bound
	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		src, err := lockOrNew(tx, from)
		if err != nil {
			return err
		}
		if src.Balance < amount {
			return fmt.Errorf("%w: %s holds %d, needs %d", errs.ErrInsufficientFunds, from, src.Balance, amount)
		}
		if from == to {
			return nil
		}
		dst, err := lockOrNew(tx, to)
		if err != nil {
			return err
		}
		if amount > MaxBalance-dst.Balance {
			return fmt.Errorf("%w: %s would exceed the maximum balance", errs.ErrInvalidAmount, to)
		}
		src.Balance -= amount
		dst.Balance += amount
		if err := tx.Save(src).Error; err != nil {
			return err
		}
		return tx.Save(dst).Error
	})
}

func lockOrNew(tx *gorm.DB, account string) (*transfer.Account, error) {
	var a transfer.Account
	err := tx.Clauses(forUpdate).Where("account = ?", account).First(&a).Error
	switch {
	case err == nil:
		return &a, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &transfer.Account{Account: account}, nil
	default:
		return nil, err
	}
}
