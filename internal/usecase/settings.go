package usecase

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/angulacms/angula/internal/domain"
)

// SettingsRepository defines persistence for the site settings row.
type SettingsRepository interface {
	Get(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, settings domain.Settings) (domain.Settings, error)
}

const settingsCacheKey = "site-settings"

type SettingsUsecase struct {
	repo  SettingsRepository
	cache *gocache.Cache
}

func NewSettingsUsecase(repo SettingsRepository) *SettingsUsecase {
	return &SettingsUsecase{
		repo:  repo,
		cache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (uc *SettingsUsecase) Get(ctx context.Context) (domain.Settings, error) {
	if cached, ok := uc.cache.Get(settingsCacheKey); ok {
		return cached.(domain.Settings), nil
	}

	settings, err := uc.repo.Get(ctx)
	if err != nil {
		return domain.Settings{}, err
	}

	uc.cache.SetDefault(settingsCacheKey, settings)
	return settings, nil
}

func (uc *SettingsUsecase) Update(ctx context.Context, settings domain.Settings) (domain.Settings, error) {
	if settings.DefaultLocale == "" {
		return domain.Settings{}, domain.ValidationError{Message: "default locale is required"}
	}

	saved, err := uc.repo.Save(ctx, settings)
	if err != nil {
		return domain.Settings{}, err
	}

	uc.cache.Delete(settingsCacheKey)
	return saved, nil
}

// EnsureDefaults seeds the settings row on first boot so the public
// surface always has a default locale to fall back to.
func (uc *SettingsUsecase) EnsureDefaults(ctx context.Context, defaults domain.Settings) error {
	_, err := uc.repo.Get(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		_, err = uc.repo.Save(ctx, defaults)
	}
	return err
}
