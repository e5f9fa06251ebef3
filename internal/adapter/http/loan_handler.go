package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trustlend/internal/usecase/loan"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type originateReq struct {
	Admin  string  `json:"-" param:"admin" validate:"required,account"`
	Amount *uint64 `json:"amount" validate:"required"`
}

type loanPath struct {
	Admin  string `param:"admin"   validate:"required,account"`
	LoanID uint64 `param:"loan_id" validate:"gte=1"`
}

type borrowerPath struct {
	Admin   string `param:"admin"   validate:"required,account"`
	Account string `param:"account" validate:"required,account"`
}

func (h *LoanHandler) Originate(c echo.Context) error {
	who, ok := caller(c)
	if !ok {
		return nil
	}
	var req originateReq
	if !bind(c, &req) {
		return nil
	}
	dto, err := h.uc.Originate(c.Request().Context(), who, req.Admin, *req.Amount)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) Repay(c echo.Context) error {
	who, ok := caller(c)
	if !ok {
		return nil
	}
	var req loanPath
	if !bind(c, &req) {
		return nil
	}
	dto, err := h.uc.Repay(c.Request().Context(), who, req.Admin, req.LoanID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) Get(c echo.Context) error {
	var req loanPath
	if !bind(c, &req) {
		return nil
	}
	dto, err := h.uc.LoanDetails(c.Request().Context(), req.LoanID, req.Admin)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListByBorrower(c echo.Context) error {
	var req borrowerPath
	if !bind(c, &req) {
		return nil
	}
	ids, err := h.uc.LoansOf(c.Request().Context(), req.Account, req.Admin)
	if err != nil {
		return fail(c, err)
	}
	if ids == nil {
		ids = []uint64{}
	}
	return c.JSON(http.StatusOK, map[string]any{"borrower": req.Account, "loan_ids": ids})
}
