package usecase

import (
	"context"

	"github.com/angulacms/angula/internal/domain"
)

// ArticleRepository defines persistence for news articles.
type ArticleRepository interface {
	List(ctx context.Context, status, tag string, offset, limit int) ([]domain.Article, int64, error)
	ListTags(ctx context.Context) ([]domain.TagCount, error)
	Get(ctx context.Context, id string) (domain.Article, error)
	GetPublishedBySlug(ctx context.Context, slug string) (domain.Article, error)
	Create(ctx context.Context, input domain.ArticleInput, authorID string) (domain.Article, error)
	Update(ctx context.Context, id string, input domain.ArticleInput) (domain.Article, error)
	Delete(ctx context.Context, id string) error
}

type ArticleUsecase struct {
	repo ArticleRepository
}

func NewArticleUsecase(repo ArticleRepository) *ArticleUsecase {
	return &ArticleUsecase{repo: repo}
}

func (uc *ArticleUsecase) List(ctx context.Context, status, tag string, offset, limit int) ([]domain.Article, int64, error) {
	return uc.repo.List(ctx, status, tag, offset, limit)
}

func (uc *ArticleUsecase) ListTags(ctx context.Context) ([]domain.TagCount, error) {
	return uc.repo.ListTags(ctx)
}

func (uc *ArticleUsecase) Get(ctx context.Context, id string) (domain.Article, error) {
	return uc.repo.Get(ctx, id)
}

func (uc *ArticleUsecase) GetPublishedBySlug(ctx context.Context, slug string) (domain.Article, error) {
	return uc.repo.GetPublishedBySlug(ctx, slug)
}

func (uc *ArticleUsecase) Create(ctx context.Context, input domain.ArticleInput, authorID string) (domain.Article, error) {
	if input.Slug == "" {
		return domain.Article{}, domain.ValidationError{Message: "article slug is required"}
	}
	if len(input.Title) == 0 {
		return domain.Article{}, domain.ValidationError{Message: "article title is required"}
	}
	return uc.repo.Create(ctx, input, authorID)
}

func (uc *ArticleUsecase) Update(ctx context.Context, id string, input domain.ArticleInput) (domain.Article, error) {
	return uc.repo.Update(ctx, id, input)
}

func (uc *ArticleUsecase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
