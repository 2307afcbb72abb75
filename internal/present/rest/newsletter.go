package rest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/angulacms/angula/internal/present/rest/presenter"
)

func (h *Handler) handleSubscribe(c echo.Context) error {
	ctx := c.Request().Context()

	var body struct {
		Email string  `json:"email"`
		Name  *string `json:"name"`
	}
	if err := c.Bind(&body); err != nil {
		return presenter.BadRequest(c, err)
	}

	sub, err := h.newsletter.Subscribe(ctx, body.Email, body.Name)
	if err != nil {
		return presenter.Error(c, err)
	}

	// The confirm token would normally leave via email; until mail
	// delivery is wired up it is returned to the caller.
	return presenter.Created(c, echo.Map{
		"message": "Please confirm your subscription",
		"token":   sub.Token,
	})
}

func (h *Handler) handleConfirm(c echo.Context) error {
	ctx := c.Request().Context()

	sub, err := h.newsletter.Confirm(ctx, c.QueryParam("token"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"message": "Subscription confirmed", "email": sub.Email})
}

func (h *Handler) handleListSubscribers(c echo.Context) error {
	ctx := c.Request().Context()

	page, pageSize, offset := parsePagination(c)

	var verified *bool
	switch c.QueryParam("verified") {
	case "true":
		v := true
		verified = &v
	case "false":
		v := false
		verified = &v
	}

	subscribers, total, err := h.newsletter.List(ctx, verified, offset, pageSize)
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, presenter.Paginated{
		Data:     subscribers,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// handleExportSubscribers streams the full subscriber list as a CSV
// download.
func (h *Handler) handleExportSubscribers(c echo.Context) error {
	ctx := c.Request().Context()

	subscribers, err := h.newsletter.Export(ctx)
	if err != nil {
		return presenter.Error(c, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"email", "name", "verified", "subscribed_at"})
	for _, s := range subscribers {
		name := ""
		if s.Name != nil {
			name = *s.Name
		}
		_ = w.Write([]string{
			s.Email,
			name,
			strconv.FormatBool(s.Verified),
			s.SubscribedAt.Format(time.RFC3339),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return presenter.InternalError(c, err)
	}

	filename := fmt.Sprintf("subscribers-%s.csv", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}

func (h *Handler) handleDeleteSubscriber(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.newsletter.Delete(ctx, c.Param("id")); err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"message": "Subscriber deleted"})
}
