package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/angulacms/angula/internal/domain"
	"github.com/angulacms/angula/internal/present/rest/middleware"
	"github.com/angulacms/angula/internal/present/rest/presenter"
)

func (h *Handler) handleLogin(c echo.Context) error {
	ctx := c.Request().Context()

	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return presenter.BadRequest(c, err)
	}

	token, user, err := h.auth.Login(ctx, body.Email, body.Password)
	if err != nil {
		return presenter.Unauthorized(c, "invalid credentials")
	}

	return presenter.OK(c, echo.Map{
		"token": token,
		"user": domain.UserRef{
			ID:   user.ID,
			Name: user.Name,
		},
	})
}

func (h *Handler) handleMe(c echo.Context) error {
	ctx := c.Request().Context()

	id := middleware.RequesterID(ctx)
	role, _ := ctx.Value(domain.RequesterRoleCtxKey).(string)

	return presenter.OK(c, echo.Map{
		"id":   id,
		"role": role,
	})
}
