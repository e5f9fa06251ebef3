package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"trustlend/internal/adapter/middleware"
	"trustlend/internal/domain/errs"
)

var statusByCode = map[string]int{
	"not_found":                http.StatusNotFound,
	"not_initialized":          http.StatusNotFound,
	"already_initialized":      http.StatusConflict,
	"already_repaid":           http.StatusConflict,
	"unauthorized":             http.StatusForbidden,
	"invalid_amount":           http.StatusBadRequest,
	"insufficient_trust_score": http.StatusUnprocessableEntity,
	"insufficient_funds":       http.StatusUnprocessableEntity,
	"overdue":                  http.StatusUnprocessableEntity,
}

// fail maps a use case error onto its HTTP status. Internal errors are
// logged and hidden from the client.
func fail(c echo.Context, err error) error {
	code := errs.Code(err)
	status, ok := statusByCode[code]
	if !ok {
		zap.L().Error("request failed",
			zap.String("path", c.Path()),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error", Code: code})
	}
	return c.JSON(status, ErrorResponse{Error: err.Error(), Code: code})
}

// caller reads the acting account from Ax-Account-Id. When it returns
// false the 400 response is already written.
func caller(c echo.Context) (string, bool) {
	id := strings.TrimSpace(c.Request().Header.Get(middleware.HeaderAccountID))
	if id == "" {
		_ = c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing Ax-Account-Id", Code: "bad_request"})
		return "", false
	}
	if !middleware.ValidAccount(id) {
		_ = c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid Ax-Account-Id", Code: "bad_request"})
		return "", false
	}
	return id, true
}

// bind decodes path params and body into req and validates it. When it
// returns false the error response is already written.
func bind(c echo.Context, req any) bool {
	if err := c.Bind(req); err != nil {
		_ = c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body", Code: "bad_request"})
		return false
	}
	if err := c.Validate(req); err != nil {
		_ = c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Code:    "validation_failed",
			Details: ToFieldErrors(err),
		})
		return false
	}
	return true
}
