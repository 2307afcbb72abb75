package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/angulacms/angula/internal/domain"
)

// SubscriberRepository defines persistence for newsletter
// subscriptions.
type SubscriberRepository interface {
	List(ctx context.Context, verified *bool, offset, limit int) ([]domain.Subscriber, int64, error)
	ListAll(ctx context.Context) ([]domain.Subscriber, error)
	Create(ctx context.Context, sub domain.Subscriber) (domain.Subscriber, error)
	Verify(ctx context.Context, token string) (domain.Subscriber, error)
	Delete(ctx context.Context, id string) error
}

type NewsletterUsecase struct {
	repo SubscriberRepository
}

func NewNewsletterUsecase(repo SubscriberRepository) *NewsletterUsecase {
	return &NewsletterUsecase{repo: repo}
}

// Subscribe registers a new unverified subscription with a fresh
// confirm token. Delivery of the confirmation mail is out of scope;
// the token is returned to the caller.
func (uc *NewsletterUsecase) Subscribe(ctx context.Context, email string, name *string) (domain.Subscriber, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return domain.Subscriber{}, domain.ValidationError{Message: "email is required"}
	}
	if !strings.Contains(email, "@") {
		return domain.Subscriber{}, domain.ValidationError{Message: "invalid email address"}
	}

	return uc.repo.Create(ctx, domain.Subscriber{
		ID:       uuid.NewString(),
		Email:    email,
		Name:     name,
		Verified: false,
		Token:    uuid.NewString(),
	})
}

func (uc *NewsletterUsecase) Confirm(ctx context.Context, token string) (domain.Subscriber, error) {
	if token == "" {
		return domain.Subscriber{}, domain.ValidationError{Message: "token is required"}
	}
	return uc.repo.Verify(ctx, token)
}

func (uc *NewsletterUsecase) List(ctx context.Context, verified *bool, offset, limit int) ([]domain.Subscriber, int64, error) {
	return uc.repo.List(ctx, verified, offset, limit)
}

// Export returns the full subscriber list for the CSV download.
func (uc *NewsletterUsecase) Export(ctx context.Context) ([]domain.Subscriber, error) {
	return uc.repo.ListAll(ctx)
}

func (uc *NewsletterUsecase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
