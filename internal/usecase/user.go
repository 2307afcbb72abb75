package usecase

import (
	"context"
	"strings"

	"github.com/angulacms/angula/internal/domain"
	"github.com/angulacms/angula/internal/service"
)

// UserRepository defines persistence for accounts. Update receives
// the password already hashed, or empty to keep the stored one.
type UserRepository interface {
	List(ctx context.Context, search, role string, offset, limit int) ([]domain.User, int64, error)
	Get(ctx context.Context, id string) (domain.User, error)
	Create(ctx context.Context, user domain.User) (domain.User, error)
	Update(ctx context.Context, id string, input domain.UserInput) (domain.User, error)
	Delete(ctx context.Context, id string) error
}

type UserUsecase struct {
	repo UserRepository
}

func NewUserUsecase(repo UserRepository) *UserUsecase {
	return &UserUsecase{repo: repo}
}

func (uc *UserUsecase) List(ctx context.Context, search, role string, offset, limit int) ([]domain.User, int64, error) {
	return uc.repo.List(ctx, search, role, offset, limit)
}

func (uc *UserUsecase) Get(ctx context.Context, id string) (domain.User, error) {
	return uc.repo.Get(ctx, id)
}

func (uc *UserUsecase) Create(ctx context.Context, input domain.UserInput) (domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" || input.Password == "" || input.Name == "" {
		return domain.User{}, domain.ValidationError{Message: "email, password, and name are required"}
	}

	role := input.Role
	if role == "" {
		role = domain.RoleEditor
	}

	hash, err := service.HashPassword(input.Password)
	if err != nil {
		return domain.User{}, err
	}

	return uc.repo.Create(ctx, domain.User{
		Email:    email,
		Name:     input.Name,
		Role:     role,
		Password: hash,
	})
}

func (uc *UserUsecase) Update(ctx context.Context, id string, input domain.UserInput) (domain.User, error) {
	if input.Password != "" {
		hash, err := service.HashPassword(input.Password)
		if err != nil {
			return domain.User{}, err
		}
		input.Password = hash
	}
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))

	return uc.repo.Update(ctx, id, input)
}

// Delete removes an account. Requesters cannot delete themselves, so
// the last working admin session can never lock itself out mid-use.
func (uc *UserUsecase) Delete(ctx context.Context, id, requesterID string) error {
	if id == requesterID {
		return domain.ValidationError{Message: "you cannot delete your own account"}
	}
	return uc.repo.Delete(ctx, id)
}
