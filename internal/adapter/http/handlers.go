package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

type Handler struct{ checks map[string]HealthCheck }

func NewHandler() *Handler { return &Handler{checks: map[string]HealthCheck{}} }

// WithCheck adds a named dependency to the health report.
func (h *Handler) WithCheck(name string, check HealthCheck) *Handler {
	h.checks[name] = check
	return h
}

func (h *Handler) Health(c echo.Context) error {
	status, code := "ok", http.StatusOK
	deps := map[string]string{}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			deps[name] = err.Error()
			status, code = "degraded", http.StatusServiceUnavailable
			continue
		}
		deps[name] = "ok"
	}

	body := map[string]any{
		"status": status,
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	}
	if len(deps) > 0 {
		body["dependencies"] = deps
	}
	return c.JSON(code, body)
}
