package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/angulacms/angula/internal/domain"
	"github.com/angulacms/angula/internal/infrastructure/database/models"
)

// settingsRowID keys the single settings row.
const settingsRowID = "default"

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) Get(ctx context.Context) (domain.Settings, error) {
	var row models.Settings
	err := r.db.WithContext(ctx).Take(&row, "id = ?", settingsRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Settings{}, domain.NotFoundError{Resource: "settings"}
	}
	if err != nil {
		return domain.Settings{}, err
	}
	return settingsToDomain(row), nil
}

func (r *SettingsRepository) Save(ctx context.Context, settings domain.Settings) (domain.Settings, error) {
	row := models.Settings{
		ID:            settingsRowID,
		SiteName:      settings.SiteName,
		Languages:     settings.Languages,
		DefaultLocale: settings.DefaultLocale,
		Theme:         mapJSON(settings.Theme),
		SocialLinks:   strMapJSON(settings.SocialLinks),
		UpdatedAt:     time.Now(),
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"site_name", "languages", "default_locale", "theme", "social_links", "updated_at",
		}),
	}).Create(&row).Error
	if err != nil {
		return domain.Settings{}, err
	}
	return settingsToDomain(row), nil
}

func settingsToDomain(s models.Settings) domain.Settings {
	return domain.Settings{
		SiteName:      s.SiteName,
		Languages:     []string(s.Languages),
		DefaultLocale: s.DefaultLocale,
		Theme:         jsonMap(s.Theme),
		SocialLinks:   jsonStrMap(s.SocialLinks),
		UpdatedAt:     s.UpdatedAt,
	}
}
