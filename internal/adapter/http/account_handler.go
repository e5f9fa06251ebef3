package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"trustlend/internal/domain/transfer"
)

// AccountHandler exposes the host balance book. Credit mints funds and is
// only routed when the faucet is enabled.
type AccountHandler struct{ ledger transfer.Ledger }

func NewAccountHandler(ledger transfer.Ledger) *AccountHandler { return &AccountHandler{ledger: ledger} }

type creditReq struct {
	Account string  `json:"-" param:"account" validate:"required,account"`
	Amount  *uint64 `json:"amount" validate:"required"`
}

func (h *AccountHandler) Credit(c echo.Context) error {
	var req creditReq
	if !bind(c, &req) {
		return nil
	}
	ctx := c.Request().Context()
	if err := h.ledger.Credit(ctx, req.Account, *req.Amount); err != nil {
		return fail(c, err)
	}
	balance, err := h.ledger.Balance(ctx, req.Account)
	if err != nil {
		return fail(c, err)
	}
	zap.L().Info("account credited", zap.String("account", req.Account), zap.Uint64("amount", *req.Amount))
	return c.JSON(http.StatusOK, map[string]any{"account": req.Account, "balance": balance})
}

func (h *AccountHandler) Balance(c echo.Context) error {
	var req accountPath
	if !bind(c, &req) {
		return nil
	}
	balance, err := h.ledger.Balance(c.Request().Context(), req.Account)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"account": req.Account, "balance": balance})
}
