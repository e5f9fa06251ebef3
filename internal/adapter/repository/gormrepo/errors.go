package gormrepo

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"trustlend/internal/domain/loan"
	"trustlend/internal/domain/platform"
	"trustlend/internal/domain/staking"
	"trustlend/internal/domain/transfer"
	"trustlend/internal/domain/trust"
)

var forUpdate = clause.Locking{Strength: "UPDATE"}

// Models lists every table the engine owns, in migration order.
func Models() []any {
	return []any{
		&trust.Record{},
		&platform.State{},
		&loan.Loan{},
		&staking.Pool{},
		&staking.Entry{},
		&transfer.Account{},
	}
}

// notFound maps gorm's missing-row error onto kind and leaves other errors as is.
func notFound(err error, kind error, format string, args ...any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: "+format, append([]any{kind}, args...)...)
	}
	return err
}

// duplicate maps a unique-key violation onto kind. The connection must be
// opened with TranslateError for gorm to report ErrDuplicatedKey.
func duplicate(err error, kind error, format string, args ...any) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: "+format, append([]any{kind}, args...)...)
	}
	return err
}
