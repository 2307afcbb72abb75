package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/angulacms/angula/internal/domain"
	"github.com/angulacms/angula/internal/present/rest/presenter"
)

func (h *Handler) handleListEvents(c echo.Context) error {
	ctx := c.Request().Context()

	page, pageSize, offset := parsePagination(c)

	events, total, err := h.event.List(ctx, offset, pageSize)
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, presenter.Paginated{
		Data:     events,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (h *Handler) handleGetEvent(c echo.Context) error {
	ctx := c.Request().Context()

	event, err := h.event.Get(ctx, c.Param("id"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, event)
}

func (h *Handler) handleCreateEvent(c echo.Context) error {
	ctx := c.Request().Context()

	var input domain.EventInput
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequest(c, err)
	}

	event, err := h.event.Create(ctx, input)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, event)
}

func (h *Handler) handleUpdateEvent(c echo.Context) error {
	ctx := c.Request().Context()

	var input domain.EventInput
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequest(c, err)
	}

	event, err := h.event.Update(ctx, c.Param("id"), input)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, event)
}

func (h *Handler) handleDeleteEvent(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.event.Delete(ctx, c.Param("id")); err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"message": "Event deleted"})
}
