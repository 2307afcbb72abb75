package rest

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/angulacms/angula/internal/present/rest/presenter"
	"github.com/angulacms/angula/internal/usecase"
)

func (h *Handler) handleTrack(c echo.Context) error {
	ctx := c.Request().Context()

	var body struct {
		Path     string `json:"path"`
		Referrer string `json:"referrer"`
		Locale   string `json:"locale"`
	}
	if err := c.Bind(&body); err != nil {
		return presenter.BadRequest(c, err)
	}

	err := h.analytics.Track(ctx, usecase.TrackInput{
		Path:      body.Path,
		Referrer:  body.Referrer,
		Locale:    body.Locale,
		IP:        c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleLive(c echo.Context) error {
	ctx := c.Request().Context()

	path := c.QueryParam("path")
	count, err := h.analytics.Live(ctx, path)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"path": path, "views": count})
}

func (h *Handler) handleStats(c echo.Context) error {
	ctx := c.Request().Context()

	days, _ := strconv.Atoi(c.QueryParam("days"))

	stats, err := h.analytics.Stats(ctx, days)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, stats)
}
