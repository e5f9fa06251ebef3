package ageoracle

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Fixed reports the same age for every account. It stands in when no
// activity history is available.
type Fixed struct{ Age time.Duration }

func (f Fixed) WalletAge(context.Context, string) (uint64, error) {
	if f.Age < 0 {
		return 0, nil
	}
	return uint64(f.Age / time.Second), nil
}

const firstSeenPrefix = "wallet:first_seen:"

// FirstSeen measures age from the first time an account was observed. The
// first observation is written with SETNX and never moves afterwards.
type FirstSeen struct {
	rdb *redis.Client
	now func() time.Time
}

func NewFirstSeen(rdb *redis.Client, now func() time.Time) *FirstSeen {
	if now == nil {
		now = time.Now
	}
	return &FirstSeen{rdb: rdb, now: now}
}

// Observe records account activity at t unless an earlier one is known.
func (o *FirstSeen) Observe(ctx context.Context, account string, t time.Time) error {
	return o.rdb.SetNX(ctx, firstSeenPrefix+account, t.Unix(), 0).Err()
}

func (o *FirstSeen) WalletAge(ctx context.Context, account string) (uint64, error) {
	now := o.now()
	if err := o.Observe(ctx, account, now); err != nil {
		return 0, fmt.Errorf("observe %s: %w", account, err)
	}
	raw, err := o.rdb.Get(ctx, firstSeenPrefix+account).Result()
	if err != nil {
		return 0, fmt.Errorf("first seen %s: %w", account, err)
	}
	first, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("first seen %s: %w", account, err)
	}
	if age := now.Unix() - first; age > 0 {
		return uint64(age), nil
	}
	return 0, nil
}
