package platform

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustlend/internal/domain/errs"
	"trustlend/internal/testutil/ledgertest"
)

const admin = "0xad"

func TestInitialize(t *testing.T) {
	env := ledgertest.New(t, nil)
	uc := NewUsecase(env.Deps)
	ctx := context.Background()

	p, err := uc.Initialize(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, admin, p.Admin)
	assert.Zero(t, p.TotalLoans)
	assert.Zero(t, p.TreasuryBalance)
	assert.False(t, p.IsPaused)
	assert.True(t, p.CreatedAt.Equal(env.Now()))

	pool, err := env.Deps.Reads.Staking.GetPool(ctx, admin)
	require.NoError(t, err)
	assert.Zero(t, pool.TotalStaked)

	_, err = uc.Initialize(ctx, admin)
	assert.ErrorIs(t, err, errs.ErrAlreadyInitialized)

	assert.Equal(t, 1.0, testutil.ToFloat64(env.Deps.Metrics.PlatformsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(env.Deps.Metrics.RejectedTotal.WithLabelValues("initialize", "already_initialized")))
}

func TestInitialize_EmptyAdmin(t *testing.T) {
	env := ledgertest.New(t, nil)
	_, err := NewUsecase(env.Deps).Initialize(context.Background(), "")
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestPauseUnpause(t *testing.T) {
	env := ledgertest.New(t, nil)
	uc := NewUsecase(env.Deps)
	ctx := context.Background()
	_, err := uc.Initialize(ctx, admin)
	require.NoError(t, err)

	_, err = uc.Pause(ctx, "0xintruder", admin)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)

	p, err := uc.Pause(ctx, admin, admin)
	require.NoError(t, err)
	assert.True(t, p.IsPaused)

	got, err := uc.Get(ctx, admin)
	require.NoError(t, err)
	assert.True(t, got.IsPaused)

	// pausing twice is harmless
	_, err = uc.Pause(ctx, admin, admin)
	require.NoError(t, err)

	_, err = uc.Unpause(ctx, "0xintruder", admin)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)

	p, err = uc.Unpause(ctx, admin, admin)
	require.NoError(t, err)
	assert.False(t, p.IsPaused)
}

func TestPause_UnknownPlatform(t *testing.T) {
	env := ledgertest.New(t, nil)
	uc := NewUsecase(env.Deps)
	ctx := context.Background()

	_, err := uc.Pause(ctx, admin, admin)
	assert.ErrorIs(t, err, errs.ErrNotInitialized)
	_, err = uc.Get(ctx, admin)
	assert.ErrorIs(t, err, errs.ErrNotInitialized)
}
