package eventsink

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"trustlend/internal/domain/event"
)

const publishTimeout = 2 * time.Second

// RedisStream appends events to a Redis Stream with XADD. Failures are
// logged and dropped.
type RedisStream struct {
	client *redis.Client
	stream string
	maxLen int64
}

func NewRedisStream(client *redis.Client, stream string, maxLen int64) *RedisStream {
	return &RedisStream{client: client, stream: stream, maxLen: maxLen}
}

func (s *RedisStream) Emit(ctx context.Context, e event.Event) {
	payload, err := json.Marshal(e.Data)
	if err != nil {
		zap.L().Error("event marshal failed", zap.String("type", string(e.Type)), zap.Error(err))
		return
	}

	// detached from the request: a cancelled caller must not drop a committed event
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	args := &redis.XAddArgs{
		Stream: s.stream,
		Values: map[string]any{
			"id":        e.ID,
			"type":      string(e.Type),
			"platform":  e.Platform,
			"timestamp": e.Timestamp.Format(time.RFC3339Nano),
			"payload":   payload,
		},
	}
	if s.maxLen > 0 {
		args.MaxLen = s.maxLen
		args.Approx = true
	}
	if err := s.client.XAdd(pctx, args).Err(); err != nil {
		zap.L().Error("event publish failed",
			zap.String("stream", s.stream),
			zap.String("type", string(e.Type)),
			zap.String("id", e.ID),
			zap.Error(err))
	}
}
