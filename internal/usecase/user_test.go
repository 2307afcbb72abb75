package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/angulacms/angula/internal/domain"
)

type mockUserRepo struct {
	users   map[string]domain.User
	updated *domain.UserInput
	deleted string
}

func (m *mockUserRepo) List(ctx context.Context, search, role string, offset, limit int) ([]domain.User, int64, error) {
	return nil, 0, nil
}

func (m *mockUserRepo) Get(ctx context.Context, id string) (domain.User, error) {
	user, ok := m.users[id]
	if !ok {
		return domain.User{}, domain.NotFoundError{Resource: "user"}
	}
	return user, nil
}

func (m *mockUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	for _, u := range m.users {
		if u.Email == user.Email {
			return domain.User{}, domain.ConflictError{Resource: "user"}
		}
	}
	user.ID = "u-new"
	return user, nil
}

func (m *mockUserRepo) Update(ctx context.Context, id string, input domain.UserInput) (domain.User, error) {
	user, ok := m.users[id]
	if !ok {
		return domain.User{}, domain.NotFoundError{Resource: "user"}
	}
	m.updated = &input
	return user, nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	m.deleted = id
	return nil
}

func TestUserCreateHashesPassword(t *testing.T) {
	uc := NewUserUsecase(&mockUserRepo{})

	user, err := uc.Create(context.Background(), domain.UserInput{
		Email:    " Editor@Example.com ",
		Name:     "Editor",
		Password: "hunter2",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if user.Email != "editor@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.Role != domain.RoleEditor {
		t.Fatalf("expected default role, got %q", user.Role)
	}
	if user.Password == "hunter2" || !strings.HasPrefix(user.Password, "$2") {
		t.Fatalf("password must be stored as a bcrypt hash, got %q", user.Password)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hunter2")); err != nil {
		t.Fatalf("stored hash does not match the password: %v", err)
	}
}

func TestUserCreateValidation(t *testing.T) {
	uc := NewUserUsecase(&mockUserRepo{})

	cases := []domain.UserInput{
		{Name: "NoEmail", Password: "x"},
		{Email: "a@b.c", Password: "x"},
		{Email: "a@b.c", Name: "NoPassword"},
	}
	for _, input := range cases {
		if _, err := uc.Create(context.Background(), input); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("input %+v: expected validation error, got %v", input, err)
		}
	}
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	repo := &mockUserRepo{users: map[string]domain.User{
		"u1": {ID: "u1", Email: "taken@example.com"},
	}}
	uc := NewUserUsecase(repo)

	_, err := uc.Create(context.Background(), domain.UserInput{
		Email: "taken@example.com", Name: "Dup", Password: "x",
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestUserUpdateHashesNewPassword(t *testing.T) {
	repo := &mockUserRepo{users: map[string]domain.User{"u1": {ID: "u1"}}}
	uc := NewUserUsecase(repo)

	if _, err := uc.Update(context.Background(), "u1", domain.UserInput{Password: "newpass"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if repo.updated.Password == "newpass" || repo.updated.Password == "" {
		t.Fatalf("password must reach the repository hashed, got %q", repo.updated.Password)
	}

	// An empty password keeps the stored hash.
	if _, err := uc.Update(context.Background(), "u1", domain.UserInput{Name: "Renamed"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if repo.updated.Password != "" {
		t.Fatalf("empty password must stay empty, got %q", repo.updated.Password)
	}
}

func TestUserDeleteForbidsSelf(t *testing.T) {
	repo := &mockUserRepo{users: map[string]domain.User{"u1": {ID: "u1"}}}
	uc := NewUserUsecase(repo)

	err := uc.Delete(context.Background(), "u1", "u1")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for self-delete, got %v", err)
	}
	if repo.deleted != "" {
		t.Fatalf("self-delete must not reach the repository")
	}

	if err := uc.Delete(context.Background(), "u1", "u2"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if repo.deleted != "u1" {
		t.Fatalf("expected u1 deleted, got %q", repo.deleted)
	}
}
