package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/angulacms/angula/internal/domain"
	"github.com/angulacms/angula/internal/present/rest/middleware"
	"github.com/angulacms/angula/internal/present/rest/presenter"
)

func (h *Handler) handleListUsers(c echo.Context) error {
	ctx := c.Request().Context()

	page, pageSize, offset := parsePagination(c)

	users, total, err := h.user.List(ctx, c.QueryParam("search"), c.QueryParam("role"), offset, pageSize)
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, presenter.Paginated{
		Data:     users,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (h *Handler) handleGetUser(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.user.Get(ctx, c.Param("id"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, user)
}

func (h *Handler) handleCreateUser(c echo.Context) error {
	ctx := c.Request().Context()

	var input domain.UserInput
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequest(c, err)
	}

	user, err := h.user.Create(ctx, input)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, user)
}

func (h *Handler) handleUpdateUser(c echo.Context) error {
	ctx := c.Request().Context()

	var input domain.UserInput
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequest(c, err)
	}

	user, err := h.user.Update(ctx, c.Param("id"), input)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, user)
}

func (h *Handler) handleDeleteUser(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.user.Delete(ctx, c.Param("id"), middleware.RequesterID(ctx)); err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"message": "User deleted"})
}
