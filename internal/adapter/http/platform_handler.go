package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trustlend/internal/usecase/platform"
)

type PlatformHandler struct{ uc *platform.Usecase }

func NewPlatformHandler(uc *platform.Usecase) *PlatformHandler { return &PlatformHandler{uc: uc} }

type platformPath struct {
	Admin string `param:"admin" validate:"required,account"`
}

// Initialize creates the caller's platform; the caller becomes its admin.
func (h *PlatformHandler) Initialize(c echo.Context) error {
	admin, ok := caller(c)
	if !ok {
		return nil
	}
	dto, err := h.uc.Initialize(c.Request().Context(), admin)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *PlatformHandler) Pause(c echo.Context) error   { return h.setPaused(c, true) }
func (h *PlatformHandler) Unpause(c echo.Context) error { return h.setPaused(c, false) }

func (h *PlatformHandler) setPaused(c echo.Context, paused bool) error {
	who, ok := caller(c)
	if !ok {
		return nil
	}
	var req platformPath
	if !bind(c, &req) {
		return nil
	}
	var (
		dto *platform.PlatformDTO
		err error
	)
	if paused {
		dto, err = h.uc.Pause(c.Request().Context(), who, req.Admin)
	} else {
		dto, err = h.uc.Unpause(c.Request().Context(), who, req.Admin)
	}
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PlatformHandler) Get(c echo.Context) error {
	var req platformPath
	if !bind(c, &req) {
		return nil
	}
	dto, err := h.uc.Get(c.Request().Context(), req.Admin)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
