package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/angulacms/angula/internal/domain"
	"github.com/angulacms/angula/internal/present/rest/middleware"
	"github.com/angulacms/angula/internal/present/rest/presenter"
)

func (h *Handler) handleListPages(c echo.Context) error {
	ctx := c.Request().Context()

	page, pageSize, offset := parsePagination(c)
	status := c.QueryParam("status")

	pages, total, err := h.page.List(ctx, status, offset, pageSize)
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, presenter.Paginated{
		Data:     pages,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (h *Handler) handleGetPage(c echo.Context) error {
	ctx := c.Request().Context()

	result, err := h.page.Get(ctx, c.Param("id"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, result)
}

func (h *Handler) handleCreatePage(c echo.Context) error {
	ctx := c.Request().Context()

	var input domain.PageInput
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequest(c, err)
	}

	result, err := h.page.Create(ctx, input, middleware.RequesterID(ctx))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, result)
}

func (h *Handler) handleUpdatePage(c echo.Context) error {
	ctx := c.Request().Context()

	var input domain.PageInput
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequest(c, err)
	}

	// Remember the current slug so a rename also evicts the old
	// cached rendering.
	oldSlug := ""
	if prior, err := h.page.Get(ctx, c.Param("id")); err == nil {
		oldSlug = prior.Slug
	}

	result, err := h.page.Update(ctx, c.Param("id"), input, middleware.RequesterID(ctx))
	if err != nil {
		return presenter.Error(c, err)
	}

	h.invalidatePublic(c, "page", result.Slug, oldSlug)
	return presenter.OK(c, result)
}

func (h *Handler) handleDeletePage(c echo.Context) error {
	ctx := c.Request().Context()

	slug := ""
	if prior, err := h.page.Get(ctx, c.Param("id")); err == nil {
		slug = prior.Slug
	}

	if err := h.page.Delete(ctx, c.Param("id")); err != nil {
		return presenter.Error(c, err)
	}

	h.invalidatePublic(c, "page", slug)
	return presenter.OK(c, echo.Map{"message": "Page deleted"})
}

func (h *Handler) handleListRevisions(c echo.Context) error {
	ctx := c.Request().Context()

	revisions, err := h.page.ListRevisions(ctx, c.Param("id"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, revisions)
}

func (h *Handler) handleRestoreRevision(c echo.Context) error {
	ctx := c.Request().Context()

	result, err := h.page.Restore(ctx, c.Param("id"), c.Param("revisionId"), middleware.RequesterID(ctx))
	if err != nil {
		return presenter.Error(c, err)
	}

	h.invalidatePublic(c, "page", result.Slug)
	return presenter.OK(c, result)
}
