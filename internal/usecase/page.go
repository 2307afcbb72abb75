package usecase

import (
	"context"

	"github.com/angulacms/angula/internal/domain"
)

// PageRepository defines persistence for pages and their revisions.
// Update and Restore must capture a revision of the overwritten state
// within the same transactional unit as the write itself.
type PageRepository interface {
	List(ctx context.Context, status string, offset, limit int) ([]domain.Page, int64, error)
	Get(ctx context.Context, id string) (domain.Page, error)
	GetPublishedBySlug(ctx context.Context, slug string) (domain.Page, error)
	Create(ctx context.Context, input domain.PageInput, authorID string) (domain.Page, error)
	Update(ctx context.Context, id string, input domain.PageInput, requesterID string) (domain.Page, error)
	Delete(ctx context.Context, id string) error
	ListRevisions(ctx context.Context, pageID string) ([]domain.Revision, error)
	Restore(ctx context.Context, pageID, revisionID, requesterID string) (domain.Page, error)
}

type PageUsecase struct {
	repo PageRepository
}

func NewPageUsecase(repo PageRepository) *PageUsecase {
	return &PageUsecase{repo: repo}
}

func (uc *PageUsecase) List(ctx context.Context, status string, offset, limit int) ([]domain.Page, int64, error) {
	return uc.repo.List(ctx, status, offset, limit)
}

func (uc *PageUsecase) Get(ctx context.Context, id string) (domain.Page, error) {
	return uc.repo.Get(ctx, id)
}

func (uc *PageUsecase) GetPublishedBySlug(ctx context.Context, slug string) (domain.Page, error) {
	return uc.repo.GetPublishedBySlug(ctx, slug)
}

func (uc *PageUsecase) Create(ctx context.Context, input domain.PageInput, authorID string) (domain.Page, error) {
	if input.Slug == "" {
		return domain.Page{}, domain.ValidationError{Message: "page slug is required"}
	}
	if len(input.Title) == 0 {
		return domain.Page{}, domain.ValidationError{Message: "page title is required"}
	}
	return uc.repo.Create(ctx, input, authorID)
}

func (uc *PageUsecase) Update(ctx context.Context, id string, input domain.PageInput, requesterID string) (domain.Page, error) {
	return uc.repo.Update(ctx, id, input, requesterID)
}

func (uc *PageUsecase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *PageUsecase) ListRevisions(ctx context.Context, pageID string) ([]domain.Revision, error) {
	if _, err := uc.repo.Get(ctx, pageID); err != nil {
		return nil, err
	}
	return uc.repo.ListRevisions(ctx, pageID)
}

func (uc *PageUsecase) Restore(ctx context.Context, pageID, revisionID, requesterID string) (domain.Page, error) {
	return uc.repo.Restore(ctx, pageID, revisionID, requesterID)
}
