package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/angulacms/angula/internal/domain"
	"github.com/angulacms/angula/internal/infrastructure/database/models"
)

type SubscriberRepository struct {
	db *gorm.DB
}

func NewSubscriberRepository(db *gorm.DB) *SubscriberRepository {
	return &SubscriberRepository{db: db}
}

func (r *SubscriberRepository) List(ctx context.Context, verified *bool, offset, limit int) ([]domain.Subscriber, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Subscriber{})
	if verified != nil {
		query = query.Where("verified = ?", *verified)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var subscribers []models.Subscriber
	err := query.Order("subscribed_at desc").
		Offset(offset).Limit(limit).
		Find(&subscribers).Error
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.Subscriber, 0, len(subscribers))
	for _, s := range subscribers {
		result = append(result, subscriberToDomain(s))
	}
	return result, total, nil
}

// ListAll returns every subscription without pagination, newest
// first. Used by the CSV export.
func (r *SubscriberRepository) ListAll(ctx context.Context) ([]domain.Subscriber, error) {
	var subscribers []models.Subscriber
	err := r.db.WithContext(ctx).
		Order("subscribed_at desc").
		Find(&subscribers).Error
	if err != nil {
		return nil, err
	}

	result := make([]domain.Subscriber, 0, len(subscribers))
	for _, s := range subscribers {
		result = append(result, subscriberToDomain(s))
	}
	return result, nil
}

func (r *SubscriberRepository) Create(ctx context.Context, sub domain.Subscriber) (domain.Subscriber, error) {
	row := models.Subscriber{
		ID:       sub.ID,
		Email:    sub.Email,
		Name:     sub.Name,
		Verified: sub.Verified,
		Token:    sub.Token,
	}
	err := r.db.WithContext(ctx).Create(&row).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.Subscriber{}, domain.ConflictError{Resource: "subscriber"}
	}
	if err != nil {
		return domain.Subscriber{}, err
	}
	return subscriberToDomain(row), nil
}

func (r *SubscriberRepository) Verify(ctx context.Context, token string) (domain.Subscriber, error) {
	var sub models.Subscriber
	err := r.db.WithContext(ctx).Take(&sub, "token = ?", token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Subscriber{}, domain.NotFoundError{Resource: "subscription"}
	}
	if err != nil {
		return domain.Subscriber{}, err
	}

	if !sub.Verified {
		if err := r.db.WithContext(ctx).Model(&models.Subscriber{}).
			Where("id = ?", sub.ID).
			Update("verified", true).Error; err != nil {
			return domain.Subscriber{}, err
		}
		sub.Verified = true
	}

	return subscriberToDomain(sub), nil
}

func (r *SubscriberRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Subscriber{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "subscriber"}
	}
	return nil
}

func subscriberToDomain(s models.Subscriber) domain.Subscriber {
	return domain.Subscriber{
		ID:           s.ID,
		Email:        s.Email,
		Name:         s.Name,
		Verified:     s.Verified,
		Token:        s.Token,
		SubscribedAt: s.SubscribedAt,
	}
}
