package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trustlend/internal/usecase/trust"
)

type TrustHandler struct{ uc *trust.Usecase }

func NewTrustHandler(uc *trust.Usecase) *TrustHandler { return &TrustHandler{uc: uc} }

type accountPath struct {
	Account string `param:"account" validate:"required,account"`
}

func (h *TrustHandler) Register(c echo.Context) error {
	who, ok := caller(c)
	if !ok {
		return nil
	}
	dto, err := h.uc.Register(c.Request().Context(), who)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// Get returns the full trust record, score and tier included.
func (h *TrustHandler) Get(c echo.Context) error {
	var req accountPath
	if !bind(c, &req) {
		return nil
	}
	dto, err := h.uc.Record(c.Request().Context(), req.Account)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *TrustHandler) MaxLoan(c echo.Context) error {
	var req accountPath
	if !bind(c, &req) {
		return nil
	}
	limit, err := h.uc.MaxLoanAmount(c.Request().Context(), req.Account)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"account": req.Account, "max_loan_amount": limit})
}
