package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/zeebo/xxh3"
	"go.uber.org/zap"

	"github.com/angulacms/angula/internal/domain"
)

// AnalyticsRepository defines persistence for page views.
type AnalyticsRepository interface {
	Insert(ctx context.Context, view domain.PageView) error
	Stats(ctx context.Context, since time.Time, topN int) (domain.Stats, error)
}

// ViewCounter keeps fast live counters beside the authoritative rows.
type ViewCounter interface {
	Increment(ctx context.Context, path string, day time.Time) error
	Get(ctx context.Context, path string, day time.Time) (int64, error)
}

// TrackInput is one inbound page-view beacon.
type TrackInput struct {
	Path      string
	Referrer  string
	Locale    string
	IP        string
	UserAgent string
}

const statsTopN = 10

type AnalyticsUsecase struct {
	repo    AnalyticsRepository
	counter ViewCounter
}

func NewAnalyticsUsecase(repo AnalyticsRepository, counter ViewCounter) *AnalyticsUsecase {
	return &AnalyticsUsecase{repo: repo, counter: counter}
}

// Track records one page view. The Postgres row is authoritative; a
// failing live counter only logs a warning and never fails the
// request.
func (uc *AnalyticsUsecase) Track(ctx context.Context, input TrackInput) error {
	if input.Path == "" {
		return domain.ValidationError{Message: "path is required"}
	}

	view := domain.PageView{
		Path:     input.Path,
		Referrer: input.Referrer,
		Locale:   input.Locale,
		Visitor:  Fingerprint(input.IP, input.UserAgent),
	}

	if err := uc.repo.Insert(ctx, view); err != nil {
		return err
	}

	if uc.counter != nil {
		if err := uc.counter.Increment(ctx, input.Path, time.Now()); err != nil {
			zap.L().Warn("view counter increment failed", zap.String("path", input.Path), zap.Error(err))
		}
	}

	return nil
}

func (uc *AnalyticsUsecase) Stats(ctx context.Context, days int) (domain.Stats, error) {
	if days <= 0 {
		days = 30
	}
	if days > 365 {
		days = 365
	}

	since := time.Now().AddDate(0, 0, -days)
	stats, err := uc.repo.Stats(ctx, since, statsTopN)
	if err != nil {
		return domain.Stats{}, err
	}
	stats.Days = days
	return stats, nil
}

// Live returns today's view count for a path straight from the live
// counter, skipping the authoritative store.
func (uc *AnalyticsUsecase) Live(ctx context.Context, path string) (int64, error) {
	if path == "" {
		return 0, domain.ValidationError{Message: "path is required"}
	}
	if uc.counter == nil {
		return 0, nil
	}
	return uc.counter.Get(ctx, path, time.Now())
}

// Fingerprint derives an anonymous visitor hash from the request's
// network address and user agent. No raw address is ever stored.
func Fingerprint(ip, userAgent string) string {
	return fmt.Sprintf("%016x", xxh3.HashString(ip+"|"+userAgent))
}
