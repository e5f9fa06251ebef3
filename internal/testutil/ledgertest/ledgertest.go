// Package ledgertest wires use cases against an in-memory database with a
// controllable clock.
package ledgertest

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"trustlend/internal/adapter/repository/gormrepo"
	"trustlend/internal/domain/event"
	"trustlend/internal/usecase"
	"trustlend/internal/testutil/testdb"
	"trustlend/pkg/monitor"
)

// Epoch is where every Env clock starts.
var Epoch = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

type Env struct {
	DB       *gorm.DB
	Deps     usecase.Deps
	Registry *prometheus.Registry
	now      time.Time
}

// New opens a fresh database. sink may be nil.
func New(t *testing.T, sink event.Sink) *Env {
	t.Helper()
	db := testdb.Open(t, gormrepo.Models()...)
	reg := prometheus.NewRegistry()

	e := &Env{DB: db, Registry: reg, now: Epoch}
	e.Deps = usecase.Deps{
		UoW:     gormrepo.NewGormUoW(db),
		Reads:   gormrepo.NewRepos(db),
		Events:  sink,
		Metrics: monitor.New(reg),
		Now:     func() time.Time { return e.now },
	}.WithDefaults()
	return e
}

func (e *Env) Now() time.Time { return e.now }

func (e *Env) Advance(d time.Duration) { e.now = e.now.Add(d) }

func (e *Env) Credit(t *testing.T, account string, amount uint64) {
	t.Helper()
	if err := e.Deps.Reads.Ledger.Credit(context.Background(), account, amount); err != nil {
		t.Fatalf("credit %s: %v", account, err)
	}
}

func (e *Env) Balance(t *testing.T, account string) uint64 {
	t.Helper()
	b, err := e.Deps.Reads.Ledger.Balance(context.Background(), account)
	if err != nil {
		t.Fatalf("balance %s: %v", account, err)
	}
	return b
}
