package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"golang.org/x/crypto/bcrypt"

	"github.com/angulacms/angula/internal/domain"
)

var tracer = otel.Tracer("auth")

const tokenLifetime = 7 * 24 * time.Hour

// UserStore is the subset of user persistence the auth service needs.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Get(ctx context.Context, id string) (domain.User, error)
}

type AuthService struct {
	secret []byte
	users  UserStore
}

func NewAuthService(secret string, users UserStore) *AuthService {
	return &AuthService{
		secret: []byte(secret),
		users:  users,
	}
}

// AuthResult is the resolved identity of an authenticated requester.
type AuthResult struct {
	UserID string
	Email  string
	Name   string
	Role   string
}

// Login verifies credentials and issues a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	ctx, span := tracer.Start(ctx, "Auth.Service.Login")
	defer span.End()

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		span.RecordError(err)
		return "", domain.User{}, domain.ValidationError{Message: "invalid credentials"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		span.RecordError(err)
		return "", domain.User{}, domain.ValidationError{Message: "invalid credentials"}
	}

	token, err := s.issue(user)
	if err != nil {
		span.RecordError(errors.Wrap(err, "AuthService.Login: token issue failed"))
		return "", domain.User{}, err
	}

	return token, user, nil
}

// Verify parses and validates a bearer token and returns the
// requester identity encoded in it.
func (s *AuthService) Verify(ctx context.Context, tokenString string) (*AuthResult, error) {
	_, span := tracer.Start(ctx, "Auth.Service.Verify")
	defer span.End()

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		span.RecordError(errors.Wrap(err, "AuthService.Verify: token parse failed"))
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, fmt.Errorf("token missing subject")
	}

	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)

	return &AuthResult{
		UserID: sub,
		Email:  email,
		Name:   name,
		Role:   role,
	}, nil
}

// HashPassword produces a bcrypt hash for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *AuthService) issue(user domain.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"name":  user.Name,
		"role":  user.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(tokenLifetime).Unix(),
	})
	return token.SignedString(s.secret)
}
