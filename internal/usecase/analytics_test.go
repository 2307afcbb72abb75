package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/angulacms/angula/internal/domain"
)

type mockAnalyticsRepo struct {
	inserted []domain.PageView
	since    time.Time
}

func (m *mockAnalyticsRepo) Insert(ctx context.Context, view domain.PageView) error {
	m.inserted = append(m.inserted, view)
	return nil
}

func (m *mockAnalyticsRepo) Stats(ctx context.Context, since time.Time, topN int) (domain.Stats, error) {
	m.since = since
	return domain.Stats{TotalViews: 42}, nil
}

type mockCounter struct {
	incremented []string
	counts      map[string]int64
	fail        bool
}

func (m *mockCounter) Increment(ctx context.Context, path string, day time.Time) error {
	if m.fail {
		return errors.New("counter backend down")
	}
	m.incremented = append(m.incremented, path)
	return nil
}

func (m *mockCounter) Get(ctx context.Context, path string, day time.Time) (int64, error) {
	if m.fail {
		return 0, errors.New("counter backend down")
	}
	return m.counts[path], nil
}

func TestTrackFingerprintsVisitor(t *testing.T) {
	repo := &mockAnalyticsRepo{}
	counter := &mockCounter{}
	uc := NewAnalyticsUsecase(repo, counter)

	input := TrackInput{Path: "/en/about", IP: "203.0.113.7", UserAgent: "Mozilla/5.0"}
	if err := uc.Track(context.Background(), input); err != nil {
		t.Fatalf("track failed: %v", err)
	}

	if len(repo.inserted) != 1 {
		t.Fatalf("expected one row, got %d", len(repo.inserted))
	}
	view := repo.inserted[0]
	if view.Visitor == "" || view.Visitor == input.IP {
		t.Fatalf("visitor must be a fingerprint, got %q", view.Visitor)
	}
	if view.Visitor != Fingerprint(input.IP, input.UserAgent) {
		t.Fatalf("fingerprint not deterministic")
	}
	if counter.incremented[0] != "/en/about" {
		t.Fatalf("counter not incremented for path")
	}
}

func TestTrackSurvivesCounterFailure(t *testing.T) {
	repo := &mockAnalyticsRepo{}
	uc := NewAnalyticsUsecase(repo, &mockCounter{fail: true})

	err := uc.Track(context.Background(), TrackInput{Path: "/en/about"})
	if err != nil {
		t.Fatalf("counter failure must not fail tracking: %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("row must still be written")
	}
}

func TestTrackRequiresPath(t *testing.T) {
	uc := NewAnalyticsUsecase(&mockAnalyticsRepo{}, nil)

	err := uc.Track(context.Background(), TrackInput{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestStatsClampsWindow(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, 30},
		{-5, 30},
		{7, 7},
		{1000, 365},
	}

	for _, tc := range cases {
		repo := &mockAnalyticsRepo{}
		uc := NewAnalyticsUsecase(repo, nil)

		stats, err := uc.Stats(context.Background(), tc.in)
		if err != nil {
			t.Fatalf("stats failed: %v", err)
		}
		if stats.Days != tc.want {
			t.Fatalf("days=%d: expected window %d got %d", tc.in, tc.want, stats.Days)
		}

		wantSince := time.Now().AddDate(0, 0, -tc.want)
		if diff := repo.since.Sub(wantSince); diff < -time.Minute || diff > time.Minute {
			t.Fatalf("days=%d: since off by %v", tc.in, diff)
		}
	}
}

func TestLiveCount(t *testing.T) {
	counter := &mockCounter{counts: map[string]int64{"/en/about": 7}}
	uc := NewAnalyticsUsecase(&mockAnalyticsRepo{}, counter)

	count, err := uc.Live(context.Background(), "/en/about")
	if err != nil {
		t.Fatalf("live failed: %v", err)
	}
	if count != 7 {
		t.Fatalf("expected 7 got %d", count)
	}

	if _, err := uc.Live(context.Background(), ""); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	// Without a counter the live count is simply zero.
	uc = NewAnalyticsUsecase(&mockAnalyticsRepo{}, nil)
	count, err = uc.Live(context.Background(), "/en/about")
	if err != nil || count != 0 {
		t.Fatalf("expected zero without counter, got %d (%v)", count, err)
	}
}

func TestFingerprintDiffersByInput(t *testing.T) {
	a := Fingerprint("203.0.113.7", "Mozilla/5.0")
	b := Fingerprint("203.0.113.8", "Mozilla/5.0")
	c := Fingerprint("203.0.113.7", "curl/8.0")

	if a == b || a == c {
		t.Fatalf("distinct inputs must produce distinct fingerprints")
	}
	if len(a) != 16 {
		t.Fatalf("expected 16 hex chars, got %q", a)
	}
}
