package gormrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"trustlend/internal/domain/errs"
	"trustlend/internal/domain/platform"
	"trustlend/internal/domain/staking"
	"trustlend/internal/domain/trust"
	"trustlend/internal/domain/uow"
)

// ----------------------------- Tests -----------------------------

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)

	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Platforms.Create(ctx, &platform.State{Admin: "admin"}); err != nil {
			return err
		}
		return r.Staking.CreatePool(ctx, &staking.Pool{Admin: "admin"})
	})
	if err != nil {
		t.Fatalf("WithinTx commit err: %v", err)
	}

	if _, err := NewPlatformRepository(db).Get(ctx, "admin"); err != nil {
		t.Fatalf("platform not visible after commit: %v", err)
	}
	if _, err := NewStakingRepository(db).GetPool(ctx, "admin"); err != nil {
		t.Fatalf("pool not visible after commit: %v", err)
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	sentinel := errors.New("boom")

	_ = guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Platforms.Create(ctx, &platform.State{Admin: "admin"}); err != nil {
			return err
		}
		if err := r.Trust.Create(ctx, trust.NewRecord("alice", 0, time.Now())); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	if _, err := NewPlatformRepository(db).Get(ctx, "admin"); !errors.Is(err, errs.ErrNotInitialized) {
		t.Fatalf("expected platform absent after rollback, got %v", err)
	}
	if _, err := NewTrustRepository(db).Get(ctx, "alice"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected trust record absent after rollback, got %v", err)
	}
}

func TestGormUoW_WithinPlatformTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if err := NewPlatformRepository(db).Create(ctx, &platform.State{Admin: "admin"}); err != nil {
		t.Fatalf("seed platform: %v", err)
	}

	guow := NewGormUoW(db)
	err := guow.WithinPlatformTx(ctx, "admin", func(r uow.Repos, p *platform.State) error {
		if p == nil || p.Admin != "admin" || p.IsPaused {
			t.Fatalf("unexpected platform passed to fn: %+v", p)
		}
		p.IsPaused = true
		return r.Platforms.Save(ctx, p)
	})
	if err != nil {
		t.Fatalf("WithinPlatformTx commit err: %v", err)
	}

	got, err := NewPlatformRepository(db).Get(ctx, "admin")
	if err != nil {
		t.Fatalf("Get post-commit: %v", err)
	}
	if !got.IsPaused {
		t.Fatalf("platform not paused after commit")
	}
}

func TestGormUoW_WithinPlatformTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if err := NewPlatformRepository(db).Create(ctx, &platform.State{Admin: "admin"}); err != nil {
		t.Fatalf("seed platform: %v", err)
	}
	if err := NewAccountLedger(db).Credit(ctx, "alice", 1_000); err != nil {
		t.Fatalf("seed balance: %v", err)
	}

	sentinel := errors.New("stop")
	_ = NewGormUoW(db).WithinPlatformTx(ctx, "admin", func(r uow.Repos, p *platform.State) error {
		if err := r.Ledger.Transfer(ctx, "alice", "admin", 1_000); err != nil {
			return err
		}
		p.NextLoanID(1_000)
		if err := r.Platforms.Save(ctx, p); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	got, err := NewPlatformRepository(db).Get(ctx, "admin")
	if err != nil {
		t.Fatalf("post-rollback Get: %v", err)
	}
	if got.TotalLoans != 0 {
		t.Fatalf("expected total_loans 0 after rollback, got %d", got.TotalLoans)
	}
	if bal, _ := NewAccountLedger(db).Balance(ctx, "alice"); bal != 1_000 {
		t.Fatalf("expected balance restored after rollback, got %d", bal)
	}
}

func TestGormUoW_WithinPlatformTx_NotInitialized(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	err := NewGormUoW(db).WithinPlatformTx(ctx, "nobody", func(r uow.Repos, p *platform.State) error {
		t.Fatalf("callback should not be called when platform missing")
		return nil
	})
	if !errors.Is(err, errs.ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}
