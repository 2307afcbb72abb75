package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/angulacms/angula/internal/domain"
	"github.com/angulacms/angula/internal/infrastructure/database/models"
)

type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) Insert(ctx context.Context, view domain.PageView) error {
	return r.db.WithContext(ctx).Create(&models.PageView{
		Path:     view.Path,
		Referrer: view.Referrer,
		Locale:   view.Locale,
		Visitor:  view.Visitor,
	}).Error
}

func (r *AnalyticsRepository) Stats(ctx context.Context, since time.Time, topN int) (domain.Stats, error) {
	var stats domain.Stats

	err := r.db.WithContext(ctx).Model(&models.PageView{}).
		Where("created_at >= ?", since).
		Count(&stats.TotalViews).Error
	if err != nil {
		return domain.Stats{}, err
	}

	err = r.db.WithContext(ctx).Model(&models.PageView{}).
		Where("created_at >= ?", since).
		Distinct("visitor").
		Count(&stats.UniqueVisitors).Error
	if err != nil {
		return domain.Stats{}, err
	}

	var top []domain.PathCount
	err = r.db.WithContext(ctx).Model(&models.PageView{}).
		Select("path, count(*) as count").
		Where("created_at >= ?", since).
		Group("path").
		Order("count desc").
		Limit(topN).
		Scan(&top).Error
	if err != nil {
		return domain.Stats{}, err
	}
	stats.TopPaths = top

	return stats, nil
}
