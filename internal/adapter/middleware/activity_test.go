package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type observerFunc func(ctx context.Context, account string, t time.Time) error

func (f observerFunc) Observe(ctx context.Context, account string, t time.Time) error {
	return f(ctx, account, t)
}

func TestActivityMiddleware(t *testing.T) {
	var seen []string
	obs := observerFunc(func(_ context.Context, account string, _ time.Time) error {
		seen = append(seen, account)
		if account == "0xfail" {
			return errors.New("redis down")
		}
		return nil
	})

	e := echo.New()
	e.Use(ActivityMiddleware(obs))
	e.GET("/x", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	for _, account := range []string{"0xa11ce", "", "bad id", "0xfail"} {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		if account != "" {
			req.Header.Set(HeaderAccountID, account)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code, account)
	}
	assert.Equal(t, []string{"0xa11ce", "0xfail"}, seen)
}
