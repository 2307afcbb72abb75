package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/angulacms/angula/internal/domain"
	"github.com/angulacms/angula/internal/present/rest/presenter"
)

func (h *Handler) handleListMenus(c echo.Context) error {
	ctx := c.Request().Context()

	menus, err := h.menu.List(ctx)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, menus)
}

func (h *Handler) handleGetMenu(c echo.Context) error {
	ctx := c.Request().Context()

	menu, err := h.menu.Get(ctx, c.Param("id"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, menu)
}

func (h *Handler) handleCreateMenu(c echo.Context) error {
	ctx := c.Request().Context()

	var body struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&body); err != nil {
		return presenter.BadRequest(c, err)
	}

	menu, err := h.menu.Create(ctx, body.Name)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, menu)
}

func (h *Handler) handleReplaceMenuItems(c echo.Context) error {
	ctx := c.Request().Context()

	var body struct {
		Items []domain.MenuItemInput `json:"items"`
	}
	if err := c.Bind(&body); err != nil {
		return presenter.BadRequest(c, err)
	}

	menu, err := h.menu.ReplaceItems(ctx, c.Param("id"), body.Items)
	if err != nil {
		return presenter.Error(c, err)
	}

	h.invalidatePublic(c, "menu", menu.Name)
	return presenter.OK(c, menu)
}

func (h *Handler) handleDeleteMenu(c echo.Context) error {
	ctx := c.Request().Context()

	name := ""
	if prior, err := h.menu.Get(ctx, c.Param("id")); err == nil {
		name = prior.Name
	}

	if err := h.menu.Delete(ctx, c.Param("id")); err != nil {
		return presenter.Error(c, err)
	}

	h.invalidatePublic(c, "menu", name)
	return presenter.OK(c, echo.Map{"message": "Menu deleted"})
}
