package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/angulacms/angula/internal/domain"
	"github.com/angulacms/angula/internal/infrastructure/database/models"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) List(ctx context.Context, offset, limit int) ([]domain.Event, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Event{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []models.Event
	err := r.db.WithContext(ctx).
		Order("starts_at desc").
		Offset(offset).Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.Event, 0, len(events))
	for _, e := range events {
		result = append(result, eventToDomain(e))
	}
	return result, total, nil
}

func (r *EventRepository) ListUpcoming(ctx context.Context, from time.Time, limit int) ([]domain.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).
		Where("starts_at >= ?", from).
		Order("starts_at asc").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}

	result := make([]domain.Event, 0, len(events))
	for _, e := range events {
		result = append(result, eventToDomain(e))
	}
	return result, nil
}

func (r *EventRepository) Get(ctx context.Context, id string) (domain.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).Take(&event, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Event{}, domain.NotFoundError{Resource: "event"}
	}
	if err != nil {
		return domain.Event{}, err
	}
	return eventToDomain(event), nil
}

func (r *EventRepository) Create(ctx context.Context, input domain.EventInput) (domain.Event, error) {
	event := models.Event{
		ID:          uuid.NewString(),
		Slug:        input.Slug,
		Title:       localizedJSON(input.Title),
		Description: localizedJSON(input.Description),
		Location:    localizedJSON(input.Location),
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		UpdatedAt:   time.Now(),
	}

	err := r.db.WithContext(ctx).Create(&event).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.Event{}, domain.ConflictError{Resource: "event slug"}
	}
	if err != nil {
		return domain.Event{}, err
	}
	return eventToDomain(event), nil
}

func (r *EventRepository) Update(ctx context.Context, id string, input domain.EventInput) (domain.Event, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Event
		err := tx.Take(&existing, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFoundError{Resource: "event"}
		}
		if err != nil {
			return err
		}

		if input.Slug != "" && input.Slug != existing.Slug {
			var count int64
			if err := tx.Model(&models.Event{}).
				Where("slug = ? AND id <> ?", input.Slug, id).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return domain.ConflictError{Resource: "event slug"}
			}
		}

		updates := map[string]any{
			"slug":        input.Slug,
			"title":       localizedJSON(input.Title),
			"description": localizedJSON(input.Description),
			"location":    localizedJSON(input.Location),
			"starts_at":   input.StartsAt,
			"ends_at":     input.EndsAt,
			"updated_at":  time.Now(),
		}
		if input.Slug == "" {
			delete(updates, "slug")
		}

		return tx.Model(&models.Event{}).Where("id = ?", id).Updates(updates).Error
	})
	if err != nil {
		return domain.Event{}, err
	}
	return r.Get(ctx, id)
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Event{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "event"}
	}
	return nil
}

func eventToDomain(e models.Event) domain.Event {
	return domain.Event{
		ID:          e.ID,
		Slug:        e.Slug,
		Title:       jsonLocalized(e.Title),
		Description: jsonLocalized(e.Description),
		Location:    jsonLocalized(e.Location),
		StartsAt:    e.StartsAt,
		EndsAt:      e.EndsAt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
