package staking

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"trustlend/internal/adapter/ageoracle"
	"trustlend/internal/domain/errs"
	"trustlend/internal/domain/event"
	"trustlend/internal/testutil/eventmock"
	"trustlend/internal/testutil/ledgertest"
	platformuc "trustlend/internal/usecase/platform"
	trustuc "trustlend/internal/usecase/trust"
)

const (
	admin = "0xad"
	alice = "0xa11ce"
	bob   = "0xb0b"
)

type fixture struct {
	env     *ledgertest.Env
	staking *Usecase
	trust   *trustuc.Usecase
}

func setup(t *testing.T, sink event.Sink) *fixture {
	t.Helper()
	env := ledgertest.New(t, sink)
	f := &fixture{
		env:     env,
		staking: NewUsecase(env.Deps),
		trust:   trustuc.NewUsecase(env.Deps, ageoracle.Fixed{}),
	}
	ctx := context.Background()
	_, err := platformuc.NewUsecase(env.Deps).Initialize(ctx, admin)
	require.NoError(t, err)
	for _, a := range []string{alice, bob} {
		_, err = f.trust.Register(ctx, a)
		require.NoError(t, err)
	}
	return f
}

func TestStake_RaisesScoreAndLimit(t *testing.T) {
	f := setup(t, nil)
	ctx := context.Background()
	f.env.Credit(t, alice, 5_000_000)

	res, err := f.staking.Stake(ctx, alice, admin, 5_000_000)
	require.NoError(t, err)
	assert.Equal(t, uint64(5_000_000), res.Staked)
	assert.Equal(t, uint64(5_000_000), res.PoolTotal)
	assert.Equal(t, uint64(105), res.Score)
	assert.Equal(t, uint64(5_000_000), res.StakedTotal)

	limit, err := f.trust.MaxLoanAmount(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(1_050_000+10_000_000), limit)

	assert.Equal(t, uint64(0), f.env.Balance(t, alice))
	assert.Equal(t, uint64(5_000_000), f.env.Balance(t, admin))
	assert.Equal(t, 5_000_000.0, testutil.ToFloat64(f.env.Deps.Metrics.StakedAmountTotal))
}

func TestUnstake_QueuesWithdrawalAndKeepsScore(t *testing.T) {
	f := setup(t, nil)
	ctx := context.Background()
	f.env.Credit(t, alice, 5_000_000)
	_, err := f.staking.Stake(ctx, alice, admin, 5_000_000)
	require.NoError(t, err)

	res, err := f.staking.Unstake(ctx, alice, admin, 2_000_000)
	require.NoError(t, err)
	assert.Equal(t, uint64(3_000_000), res.Staked)
	assert.Equal(t, uint64(2_000_000), res.PendingWithdrawal)
	assert.Equal(t, uint64(3_000_000), res.PoolTotal)
	assert.Equal(t, uint64(105), res.Score)

	pending, err := f.staking.PendingWithdrawal(ctx, alice, admin)
	require.NoError(t, err)
	assert.Equal(t, uint64(2_000_000), pending)

	rec, err := f.trust.Record(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(3_000_000), rec.StakedAmount)
	assert.Equal(t, uint64(105), rec.Score)

	// funds stay with the platform until paid out
	assert.Equal(t, uint64(5_000_000), f.env.Balance(t, admin))
}

func TestUnstake_Rejections(t *testing.T) {
	f := setup(t, nil)
	ctx := context.Background()

	_, err := f.staking.Unstake(ctx, alice, admin, 1)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	f.env.Credit(t, alice, 1_000_000)
	_, err = f.staking.Stake(ctx, alice, admin, 1_000_000)
	require.NoError(t, err)

	_, err = f.staking.Unstake(ctx, alice, admin, 0)
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)

	_, err = f.staking.Unstake(ctx, alice, admin, 1_000_001)
	assert.ErrorIs(t, err, errs.ErrInsufficientFunds)

	s, err := f.staking.StakeOf(ctx, alice, admin)
	require.NoError(t, err)
	assert.Equal(t, uint64(1_000_000), s.Staked)
	assert.Zero(t, s.PendingWithdrawal)

	_, err = f.staking.Unstake(ctx, alice, "0xnoplatform", 1)
	assert.ErrorIs(t, err, errs.ErrNotInitialized)
}

func TestStake_Rejections(t *testing.T) {
	f := setup(t, nil)
	ctx := context.Background()

	_, err := f.staking.Stake(ctx, "0xstranger", admin, 1_000_000)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	_, err = f.staking.Stake(ctx, alice, "0xnoplatform", 1_000_000)
	assert.ErrorIs(t, err, errs.ErrNotInitialized)

	_, err = f.staking.Stake(ctx, alice, admin, 0)
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)

	f.env.Credit(t, alice, 999_999)
	_, err = f.staking.Stake(ctx, alice, admin, 1_000_000)
	assert.ErrorIs(t, err, errs.ErrInsufficientFunds)

	assert.Equal(t, uint64(999_999), f.env.Balance(t, alice))
	pool, err := f.staking.Pool(ctx, admin)
	require.NoError(t, err)
	assert.Zero(t, pool.TotalStaked)
	rec, err := f.trust.Record(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), rec.Score)
	assert.Zero(t, rec.StakedAmount)
}

func TestStake_ScoreIsCapped(t *testing.T) {
	f := setup(t, nil)
	ctx := context.Background()
	f.env.Credit(t, alice, 2_000_000_000)

	res, err := f.staking.Stake(ctx, alice, admin, 2_000_000_000)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), res.Score)
	assert.Equal(t, "platinum", res.Tier)
}

func TestPoolTotalMatchesEntries(t *testing.T) {
	f := setup(t, nil)
	ctx := context.Background()
	f.env.Credit(t, alice, 10_000_000)
	f.env.Credit(t, bob, 10_000_000)

	steps := []struct {
		account string
		amount  uint64
		unstake bool
	}{
		{alice, 4_000_000, false},
		{bob, 3_000_000, false},
		{alice, 1_500_000, true},
		{bob, 2_000_000, false},
		{bob, 5_000_000, true},
	}
	for _, s := range steps {
		var err error
		if s.unstake {
			_, err = f.staking.Unstake(ctx, s.account, admin, s.amount)
		} else {
			_, err = f.staking.Stake(ctx, s.account, admin, s.amount)
		}
		require.NoError(t, err)

		sum, err := f.env.Deps.Reads.Staking.SumStaked(ctx, admin)
		require.NoError(t, err)
		pool, err := f.staking.Pool(ctx, admin)
		require.NoError(t, err)
		assert.Equal(t, sum, pool.TotalStaked)
	}

	pool, err := f.staking.Pool(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, uint64(2_500_000), pool.TotalStaked)
}

func TestStakeOf(t *testing.T) {
	f := setup(t, nil)
	ctx := context.Background()

	s, err := f.staking.StakeOf(ctx, alice, admin)
	require.NoError(t, err)
	assert.Equal(t, &StakeDTO{Platform: admin, Account: alice}, s)

	pending, err := f.staking.PendingWithdrawal(ctx, alice, admin)
	require.NoError(t, err)
	assert.Zero(t, pending)

	_, err = f.staking.StakeOf(ctx, alice, "0xnoplatform")
	assert.ErrorIs(t, err, errs.ErrNotInitialized)
	_, err = f.staking.Pool(ctx, "0xnoplatform")
	assert.ErrorIs(t, err, errs.ErrNotInitialized)

	pool, err := f.staking.Pool(ctx, admin)
	require.NoError(t, err)
	assert.True(t, pool.LastRewardTime.Equal(ledgertest.Epoch))
}

func TestEvents_StakeOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := eventmock.NewMockSink(ctrl)
	f := setup(t, sink)
	ctx := context.Background()
	f.env.Credit(t, alice, 3_000_000)

	var got event.Event
	sink.EXPECT().Emit(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e event.Event) {
		got = e
	})
	_, err := f.staking.Stake(ctx, alice, admin, 3_000_000)
	require.NoError(t, err)
	assert.Equal(t, event.TypeStake, got.Type)
	assert.Equal(t, event.Stake{User: alice, Amount: 3_000_000, TotalStaked: 3_000_000}, got.Data)

	// unstaking is not announced
	_, err = f.staking.Unstake(ctx, alice, admin, 1_000_000)
	require.NoError(t, err)
}

func TestStake_AdminOnOwnPlatformNeedsFunds(t *testing.T) {
	f := setup(t, nil)
	ctx := context.Background()
	_, err := f.trust.Register(ctx, admin)
	require.NoError(t, err)

	_, err = f.staking.Stake(ctx, admin, admin, 50_000_000_000)
	assert.ErrorIs(t, err, errs.ErrInsufficientFunds)

	rec, err := f.trust.Record(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), rec.Score)
	assert.Zero(t, rec.StakedAmount)
	pool, err := f.staking.Pool(ctx, admin)
	require.NoError(t, err)
	assert.Zero(t, pool.TotalStaked)

	f.env.Credit(t, admin, 5_000_000)
	res, err := f.staking.Stake(ctx, admin, admin, 5_000_000)
	require.NoError(t, err)
	assert.Equal(t, uint64(5_000_000), res.Staked)
	assert.Equal(t, uint64(105), res.Score)
	assert.Equal(t, uint64(5_000_000), f.env.Balance(t, admin))
}
