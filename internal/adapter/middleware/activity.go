package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ActivityObserver records that an account was seen at a point in time.
type ActivityObserver interface {
	Observe(ctx context.Context, account string, t time.Time) error
}

// ActivityMiddleware reports every well-formed Ax-Account-Id to obs before
// the handler runs. Observer failures are logged and never fail the request.
func ActivityMiddleware(obs ActivityObserver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account := strings.TrimSpace(c.Request().Header.Get(HeaderAccountID))
			if account != "" && ValidAccount(account) {
				if err := obs.Observe(c.Request().Context(), account, nowUTC()); err != nil {
					zap.L().Warn("activity not recorded", zap.String("account", account), zap.Error(err))
				}
			}
			return next(c)
		}
	}
}
