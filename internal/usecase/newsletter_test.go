package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/angulacms/angula/internal/domain"
)

type mockSubscriberRepo struct {
	created   []domain.Subscriber
	verified  string
	existing  map[string]bool
	tokenKnow map[string]domain.Subscriber
}

func (m *mockSubscriberRepo) List(ctx context.Context, verified *bool, offset, limit int) ([]domain.Subscriber, int64, error) {
	return nil, 0, nil
}

func (m *mockSubscriberRepo) ListAll(ctx context.Context) ([]domain.Subscriber, error) {
	return m.created, nil
}

func (m *mockSubscriberRepo) Create(ctx context.Context, sub domain.Subscriber) (domain.Subscriber, error) {
	if m.existing[sub.Email] {
		return domain.Subscriber{}, domain.ConflictError{Resource: "subscriber"}
	}
	m.created = append(m.created, sub)
	return sub, nil
}

func (m *mockSubscriberRepo) Verify(ctx context.Context, token string) (domain.Subscriber, error) {
	sub, ok := m.tokenKnow[token]
	if !ok {
		return domain.Subscriber{}, domain.NotFoundError{Resource: "subscription"}
	}
	m.verified = token
	sub.Verified = true
	return sub, nil
}

func (m *mockSubscriberRepo) Delete(ctx context.Context, id string) error { return nil }

func TestSubscribeNormalizesEmail(t *testing.T) {
	repo := &mockSubscriberRepo{}
	uc := NewNewsletterUsecase(repo)

	sub, err := uc.Subscribe(context.Background(), "  Reader@Example.COM ", nil)
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	if sub.Email != "reader@example.com" {
		t.Fatalf("expected lowercased trimmed email, got %q", sub.Email)
	}
	if sub.Verified {
		t.Fatalf("new subscription must start unverified")
	}
	if sub.Token == "" || sub.ID == "" {
		t.Fatalf("expected generated id and confirm token")
	}
}

func TestSubscribeRejectsBadEmail(t *testing.T) {
	uc := NewNewsletterUsecase(&mockSubscriberRepo{})

	for _, email := range []string{"", "   ", "not-an-email"} {
		_, err := uc.Subscribe(context.Background(), email, nil)
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("email %q: expected validation error, got %v", email, err)
		}
	}
}

func TestSubscribeDuplicateConflicts(t *testing.T) {
	repo := &mockSubscriberRepo{existing: map[string]bool{"reader@example.com": true}}
	uc := NewNewsletterUsecase(repo)

	_, err := uc.Subscribe(context.Background(), "reader@example.com", nil)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestConfirm(t *testing.T) {
	repo := &mockSubscriberRepo{tokenKnow: map[string]domain.Subscriber{
		"tok-1": {ID: "s1", Email: "reader@example.com"},
	}}
	uc := NewNewsletterUsecase(repo)

	_, err := uc.Confirm(context.Background(), "")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for empty token, got %v", err)
	}

	_, err = uc.Confirm(context.Background(), "unknown")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found for unknown token, got %v", err)
	}

	sub, err := uc.Confirm(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if !sub.Verified {
		t.Fatalf("expected subscription to be verified")
	}
}
