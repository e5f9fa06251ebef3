// Package usecase holds what every ledger use case shares: the unit of
// work, a read-side repository set, the event sink, metrics and the clock.
package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"trustlend/internal/domain/errs"
	"trustlend/internal/domain/event"
	"trustlend/internal/domain/uow"
	"trustlend/pkg/monitor"
)

type Deps struct {
	UoW     uow.UnitOfWork
	Reads   uow.Repos
	Events  event.Sink
	Metrics *monitor.BusinessMetrics
	Now     func() time.Time
}

// WithDefaults fills the optional collaborators.
func (d Deps) WithDefaults() Deps {
	if d.Events == nil {
		d.Events = event.Nop{}
	}
	if d.Metrics == nil {
		d.Metrics = monitor.Noop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

// Clock returns the current time in UTC.
func (d Deps) Clock() time.Time { return d.Now().UTC() }

// Emit publishes a committed operation's event.
func (d Deps) Emit(ctx context.Context, typ event.Type, platform string, data any) {
	d.Events.Emit(ctx, event.New(typ, platform, data, d.Clock()))
}

// Reject counts and logs a failed operation and returns err unchanged.
func (d Deps) Reject(op string, err error, fields ...zap.Field) error {
	code := errs.Code(err)
	d.Metrics.RejectedTotal.WithLabelValues(op, code).Inc()

	fields = append(fields, zap.String("op", op), zap.String("code", code), zap.Error(err))
	if code == "internal" {
		zap.L().Error("operation failed", fields...)
	} else {
		zap.L().Info("operation rejected", fields...)
	}
	return err
}
