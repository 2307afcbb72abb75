package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/angulacms/angula/internal/domain"
	"github.com/angulacms/angula/internal/present/rest/presenter"
)

func (h *Handler) handleGetSettings(c echo.Context) error {
	ctx := c.Request().Context()

	settings, err := h.settings.Get(ctx)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, settings)
}

func (h *Handler) handleUpdateSettings(c echo.Context) error {
	ctx := c.Request().Context()

	var input domain.Settings
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequest(c, err)
	}

	settings, err := h.settings.Update(ctx, input)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, settings)
}
