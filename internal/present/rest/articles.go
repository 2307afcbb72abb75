package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/angulacms/angula/internal/domain"
	"github.com/angulacms/angula/internal/present/rest/middleware"
	"github.com/angulacms/angula/internal/present/rest/presenter"
)

func (h *Handler) handleListArticles(c echo.Context) error {
	ctx := c.Request().Context()

	page, pageSize, offset := parsePagination(c)
	status := c.QueryParam("status")
	tag := c.QueryParam("tag")

	articles, total, err := h.article.List(ctx, status, tag, offset, pageSize)
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, presenter.Paginated{
		Data:     articles,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (h *Handler) handleListTags(c echo.Context) error {
	ctx := c.Request().Context()

	tags, err := h.article.ListTags(ctx)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, tags)
}

func (h *Handler) handleGetArticle(c echo.Context) error {
	ctx := c.Request().Context()

	article, err := h.article.Get(ctx, c.Param("id"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, article)
}

func (h *Handler) handleCreateArticle(c echo.Context) error {
	ctx := c.Request().Context()

	var input domain.ArticleInput
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequest(c, err)
	}

	article, err := h.article.Create(ctx, input, middleware.RequesterID(ctx))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, article)
}

func (h *Handler) handleUpdateArticle(c echo.Context) error {
	ctx := c.Request().Context()

	var input domain.ArticleInput
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequest(c, err)
	}

	article, err := h.article.Update(ctx, c.Param("id"), input)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, article)
}

func (h *Handler) handleDeleteArticle(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.article.Delete(ctx, c.Param("id")); err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"message": "Article deleted"})
}
