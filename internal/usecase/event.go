package usecase

import (
	"context"
	"time"

	"github.com/angulacms/angula/internal/domain"
)

// EventRepository defines persistence for events.
type EventRepository interface {
	List(ctx context.Context, offset, limit int) ([]domain.Event, int64, error)
	ListUpcoming(ctx context.Context, from time.Time, limit int) ([]domain.Event, error)
	Get(ctx context.Context, id string) (domain.Event, error)
	Create(ctx context.Context, input domain.EventInput) (domain.Event, error)
	Update(ctx context.Context, id string, input domain.EventInput) (domain.Event, error)
	Delete(ctx context.Context, id string) error
}

type EventUsecase struct {
	repo EventRepository
}

func NewEventUsecase(repo EventRepository) *EventUsecase {
	return &EventUsecase{repo: repo}
}

func (uc *EventUsecase) List(ctx context.Context, offset, limit int) ([]domain.Event, int64, error) {
	return uc.repo.List(ctx, offset, limit)
}

func (uc *EventUsecase) ListUpcoming(ctx context.Context, limit int) ([]domain.Event, error) {
	return uc.repo.ListUpcoming(ctx, time.Now(), limit)
}

func (uc *EventUsecase) Get(ctx context.Context, id string) (domain.Event, error) {
	return uc.repo.Get(ctx, id)
}

func (uc *EventUsecase) Create(ctx context.Context, input domain.EventInput) (domain.Event, error) {
	if input.Slug == "" {
		return domain.Event{}, domain.ValidationError{Message: "event slug is required"}
	}
	if len(input.Title) == 0 {
		return domain.Event{}, domain.ValidationError{Message: "event title is required"}
	}
	if input.StartsAt.IsZero() {
		return domain.Event{}, domain.ValidationError{Message: "event start time is required"}
	}
	if input.EndsAt != nil && input.EndsAt.Before(input.StartsAt) {
		return domain.Event{}, domain.ValidationError{Message: "event cannot end before it starts"}
	}
	return uc.repo.Create(ctx, input)
}

func (uc *EventUsecase) Update(ctx context.Context, id string, input domain.EventInput) (domain.Event, error) {
	if input.EndsAt != nil && !input.StartsAt.IsZero() && input.EndsAt.Before(input.StartsAt) {
		return domain.Event{}, domain.ValidationError{Message: "event cannot end before it starts"}
	}
	return uc.repo.Update(ctx, id, input)
}

func (uc *EventUsecase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
