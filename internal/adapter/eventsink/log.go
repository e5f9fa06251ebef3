package eventsink

import (
	"context"

	"go.uber.org/zap"

	"trustlend/internal/domain/event"
)

// Log writes every event to a zap logger at info level.
type Log struct{ l *zap.Logger }

func NewLog(l *zap.Logger) *Log { return &Log{l: l} }

func (s *Log) Emit(_ context.Context, e event.Event) {
	s.l.Info("event",
		zap.String("id", e.ID),
		zap.String("type", string(e.Type)),
		zap.String("platform", e.Platform),
		zap.Time("timestamp", e.Timestamp),
		zap.Any("data", e.Data))
}

// Multi fans an event out to every sink in order.
type Multi []event.Sink

func (m Multi) Emit(ctx context.Context, e event.Event) {
	for _, s := range m {
		s.Emit(ctx, e)
	}
}
