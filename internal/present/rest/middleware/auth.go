package middleware

import (
	"context"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/angulacms/angula/internal/domain"
	"github.com/angulacms/angula/internal/present/rest/presenter"
	"github.com/angulacms/angula/internal/service"
)

var tracer = otel.Tracer("auth")

type AuthMiddleware struct {
	auth *service.AuthService
}

func NewAuthMiddleware(auth *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		auth: auth,
	}
}

// RequireAuth rejects requests without a valid bearer token and
// stores the requester identity in the request context.
func (s *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.RequireAuth")
		defer span.End()

		authHeader := c.Request().Header.Get("authorization")
		if authHeader == "" {
			return presenter.Unauthorized(c, "authentication required")
		}

		split := strings.Split(authHeader, " ")
		if len(split) != 2 {
			span.RecordError(fmt.Errorf("invalid authentication header"))
			return presenter.Unauthorized(c, "invalid authorization header")
		}

		authType, token := split[0], split[1]
		if authType != "Bearer" {
			span.RecordError(fmt.Errorf("only Bearer is acceptable"))
			return presenter.Unauthorized(c, "invalid authorization header")
		}

		result, err := s.auth.Verify(ctx, token)
		if err != nil {
			span.RecordError(errors.Wrap(err, "AuthMiddleware.RequireAuth: token verification failed"))
			return presenter.Unauthorized(c, "invalid or expired token")
		}

		ctx = context.WithValue(ctx, domain.RequesterIdCtxKey, result.UserID)
		ctx = context.WithValue(ctx, domain.RequesterRoleCtxKey, result.Role)
		span.SetAttributes(attribute.String("RequesterId", result.UserID))

		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// RequireRole rejects authenticated requesters whose role does not
// match. Layered on top of RequireAuth.
func (s *AuthMiddleware) RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			got, _ := c.Request().Context().Value(domain.RequesterRoleCtxKey).(string)
			if got != role {
				return presenter.Forbidden(c, "insufficient permissions")
			}
			return next(c)
		}
	}
}

// RequesterID extracts the authenticated user ID from the request
// context.
func RequesterID(ctx context.Context) string {
	id, _ := ctx.Value(domain.RequesterIdCtxKey).(string)
	return id
}
