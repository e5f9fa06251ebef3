package main

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustlend/internal/config"
	"trustlend/internal/domain/trust"
	"trustlend/internal/infrastructure/db"
	"trustlend/pkg/id"
)

func TestNewEcho_StampsRequestIDAndRecovers(t *testing.T) {
	e := newEcho()
	e.GET("/boom", func(echo.Context) error { panic("boom") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.True(t, id.Valid(rec.Header().Get(echo.HeaderXRequestID)), "request id %q", rec.Header().Get(echo.HeaderXRequestID))
	assert.NotNil(t, e.Validator)
}

func TestMigrateCommand_CreatesTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "migrate.db")
	prev := cfg
	cfg = &config.Config{DBDriver: config.DriverSQLite, SQLitePath: path}
	t.Cleanup(func() { cfg = prev })

	cmd := migrateCommand()
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	gdb, err := db.OpenGorm(config.DriverSQLite, path)
	require.NoError(t, err)
	defer closeDB(gdb)

	for _, table := range []string{"trust_records", "platforms", "loans", "staking_pools", "stake_entries", "accounts"} {
		assert.True(t, gdb.Migrator().HasTable(table), "table %s", table)
	}
	assert.True(t, gdb.Migrator().HasTable(&trust.Record{}))
}
