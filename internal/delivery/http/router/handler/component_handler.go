package handler

import (
	"log/slog"
	"net/http"

	"enplan/internal/delivery/http/response"
	"enplan/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ComponentHandler serves the read-only component catalog.
type ComponentHandler struct {
	uc     usecase.ComponentUsecase
	logger *slog.Logger
}

// NewComponentHandler is the constructor for ComponentHandler, injected by Fx.
func NewComponentHandler(uc usecase.ComponentUsecase, logger *slog.Logger) *ComponentHandler {
	return &ComponentHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the full catalog.
func (h *ComponentHandler) List(c echo.Context) error {
	components, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, components)
}

// Get returns a catalog entry by name.
func (h *ComponentHandler) Get(c echo.Context) error {
	component, err := h.uc.Get(c.Request().Context(), c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, component)
}
