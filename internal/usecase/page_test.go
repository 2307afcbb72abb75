package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/angulacms/angula/internal/domain"
	"github.com/angulacms/angula/locale"
)

type mockPageRepo struct {
	pages     map[string]domain.Page
	revisions map[string][]domain.Revision

	restoredPage     string
	restoredRevision string
	restoredBy       string
	listedRevisions  string
}

func (m *mockPageRepo) List(ctx context.Context, status string, offset, limit int) ([]domain.Page, int64, error) {
	return nil, 0, nil
}

func (m *mockPageRepo) Get(ctx context.Context, id string) (domain.Page, error) {
	page, ok := m.pages[id]
	if !ok {
		return domain.Page{}, domain.NotFoundError{Resource: "page"}
	}
	return page, nil
}

func (m *mockPageRepo) GetPublishedBySlug(ctx context.Context, slug string) (domain.Page, error) {
	return domain.Page{}, domain.NotFoundError{Resource: "page"}
}

func (m *mockPageRepo) Create(ctx context.Context, input domain.PageInput, authorID string) (domain.Page, error) {
	return domain.Page{ID: "p1", Slug: input.Slug, Title: input.Title}, nil
}

func (m *mockPageRepo) Update(ctx context.Context, id string, input domain.PageInput, requesterID string) (domain.Page, error) {
	page, ok := m.pages[id]
	if !ok {
		return domain.Page{}, domain.NotFoundError{Resource: "page"}
	}
	return page, nil
}

func (m *mockPageRepo) Delete(ctx context.Context, id string) error { return nil }

func (m *mockPageRepo) ListRevisions(ctx context.Context, pageID string) ([]domain.Revision, error) {
	m.listedRevisions = pageID
	return m.revisions[pageID], nil
}

func (m *mockPageRepo) Restore(ctx context.Context, pageID, revisionID, requesterID string) (domain.Page, error) {
	found := false
	for _, rev := range m.revisions[pageID] {
		if rev.ID == revisionID {
			found = true
		}
	}
	if !found {
		return domain.Page{}, domain.NotFoundError{Resource: "revision"}
	}
	m.restoredPage = pageID
	m.restoredRevision = revisionID
	m.restoredBy = requesterID
	return m.pages[pageID], nil
}

func TestPageCreateValidation(t *testing.T) {
	uc := NewPageUsecase(&mockPageRepo{})

	_, err := uc.Create(context.Background(), domain.PageInput{Title: locale.Localized{"en": "About"}}, "u1")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for missing slug, got %v", err)
	}

	_, err = uc.Create(context.Background(), domain.PageInput{Slug: "about"}, "u1")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for missing title, got %v", err)
	}

	_, err = uc.Create(context.Background(), domain.PageInput{
		Slug:  "about",
		Title: locale.Localized{"en": "About"},
	}, "u1")
	if err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}
}

func TestPageListRevisionsChecksPageExists(t *testing.T) {
	repo := &mockPageRepo{
		pages:     map[string]domain.Page{"p1": {ID: "p1", Slug: "about"}},
		revisions: map[string][]domain.Revision{"p1": {{ID: "r1", PageID: "p1"}}},
	}
	uc := NewPageUsecase(repo)

	_, err := uc.ListRevisions(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found for unknown page, got %v", err)
	}
	if repo.listedRevisions != "" {
		t.Fatalf("revisions must not be listed for a missing page")
	}

	revs, err := uc.ListRevisions(context.Background(), "p1")
	if err != nil {
		t.Fatalf("list revisions failed: %v", err)
	}
	if len(revs) != 1 || revs[0].ID != "r1" {
		t.Fatalf("unexpected revisions: %v", revs)
	}
}

func TestPageRestoreScopedToOwningPage(t *testing.T) {
	repo := &mockPageRepo{
		pages: map[string]domain.Page{
			"p1": {ID: "p1", Slug: "about"},
			"p2": {ID: "p2", Slug: "contact"},
		},
		revisions: map[string][]domain.Revision{
			"p1": {{ID: "r1", PageID: "p1"}},
		},
	}
	uc := NewPageUsecase(repo)

	// r1 belongs to p1, so restoring it through p2 must not resolve.
	_, err := uc.Restore(context.Background(), "p2", "r1", "u1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found for foreign revision, got %v", err)
	}

	if _, err := uc.Restore(context.Background(), "p1", "r1", "u1"); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if repo.restoredPage != "p1" || repo.restoredRevision != "r1" || repo.restoredBy != "u1" {
		t.Fatalf("restore arguments not forwarded: %+v", repo)
	}
}
