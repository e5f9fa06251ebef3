package gormrepo

import (
	"context"
	"errors"
	"testing"

	"trustlend/internal/domain/errs"
	"trustlend/internal/domain/staking"
)

func TestStaking_PoolAndEntries(t *testing.T) {
	db := openTestDB(t)
	repo := NewStakingRepository(db)
	ctx := context.Background()

	if _, err := repo.GetPoolForUpdate(ctx, "admin"); !errors.Is(err, errs.ErrNotInitialized) {
		t.Fatalf("pool before create: want ErrNotInitialized, got %v", err)
	}
	if err := repo.CreatePool(ctx, &staking.Pool{Admin: "admin"}); err != nil {
		t.Fatalf("CreatePool: %v", err)
	}
	if err := repo.CreatePool(ctx, &staking.Pool{Admin: "admin"}); !errors.Is(err, errs.ErrAlreadyInitialized) {
		t.Fatalf("second CreatePool: want ErrAlreadyInitialized, got %v", err)
	}

	if _, err := repo.GetEntry(ctx, "admin", "alice"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("entry before first stake: want ErrNotFound, got %v", err)
	}

	pool, err := repo.GetPoolForUpdate(ctx, "admin")
	if err != nil {
		t.Fatalf("GetPoolForUpdate: %v", err)
	}
	alice := &staking.Entry{PlatformAdmin: "admin", Account: "alice"}
	bob := &staking.Entry{PlatformAdmin: "admin", Account: "bob"}
	pool.Deposit(alice, 5_000_000)
	pool.Deposit(bob, 7_000_000)
	if err := pool.Withdraw(alice, 2_000_000); err != nil {
		t.Fatalf("Withdraw: %v", err)
	}
	for _, e := range []*staking.Entry{alice, bob} {
		if err := repo.SaveEntry(ctx, e); err != nil {
			t.Fatalf("SaveEntry(%s): %v", e.Account, err)
		}
	}
	if err := repo.SavePool(ctx, pool); err != nil {
		t.Fatalf("SavePool: %v", err)
	}

	got, err := repo.GetEntryForUpdate(ctx, "admin", "alice")
	if err != nil {
		t.Fatalf("GetEntryForUpdate: %v", err)
	}
	if got.Staked != 3_000_000 || got.PendingWithdrawal != 2_000_000 {
		t.Fatalf("unexpected entry: %+v", got)
	}

	sum, err := repo.SumStaked(ctx, "admin")
	if err != nil {
		t.Fatalf("SumStaked: %v", err)
	}
	p, err := repo.GetPool(ctx, "admin")
	if err != nil {
		t.Fatalf("GetPool: %v", err)
	}
	if sum != p.TotalStaked || sum != 10_000_000 {
		t.Fatalf("sum=%d total=%d, want both 10000000", sum, p.TotalStaked)
	}

	empty, err := repo.SumStaked(ctx, "other")
	if err != nil || empty != 0 {
		t.Fatalf("SumStaked(other) = %d, %v", empty, err)
	}
}
