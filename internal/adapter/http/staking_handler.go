package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trustlend/internal/usecase/staking"
)

type StakingHandler struct{ uc *staking.Usecase }

func NewStakingHandler(uc *staking.Usecase) *StakingHandler { return &StakingHandler{uc: uc} }

type amountReq struct {
	Admin  string  `json:"-" param:"admin" validate:"required,account"`
	Amount *uint64 `json:"amount" validate:"required"`
}

func (h *StakingHandler) Stake(c echo.Context) error {
	who, ok := caller(c)
	if !ok {
		return nil
	}
	var req amountReq
	if !bind(c, &req) {
		return nil
	}
	dto, err := h.uc.Stake(c.Request().Context(), who, req.Admin, *req.Amount)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *StakingHandler) Unstake(c echo.Context) error {
	who, ok := caller(c)
	if !ok {
		return nil
	}
	var req amountReq
	if !bind(c, &req) {
		return nil
	}
	dto, err := h.uc.Unstake(c.Request().Context(), who, req.Admin, *req.Amount)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *StakingHandler) Get(c echo.Context) error {
	var req borrowerPath
	if !bind(c, &req) {
		return nil
	}
	dto, err := h.uc.StakeOf(c.Request().Context(), req.Account, req.Admin)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *StakingHandler) PendingWithdrawal(c echo.Context) error {
	var req borrowerPath
	if !bind(c, &req) {
		return nil
	}
	amount, err := h.uc.PendingWithdrawal(c.Request().Context(), req.Account, req.Admin)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"account": req.Account, "pending_withdrawal": amount})
}
