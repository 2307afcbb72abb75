package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/angulacms/angula/internal/domain"
	"github.com/angulacms/angula/internal/infrastructure/database/models"
)

type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) List(ctx context.Context, status, tag string, offset, limit int) ([]domain.Article, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Article{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if tag != "" {
		query = query.Where("? = ANY(tags)", tag)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []models.Article
	err := query.Preload("Author").
		Order("published_at desc NULLS LAST, created_at desc").
		Offset(offset).Limit(limit).
		Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		result = append(result, articleToDomain(a))
	}
	return result, total, nil
}

// ListTags returns every distinct tag in use with its article count,
// alphabetically.
func (r *ArticleRepository) ListTags(ctx context.Context) ([]domain.TagCount, error) {
	var tags []domain.TagCount
	err := r.db.WithContext(ctx).Model(&models.Article{}).
		Select("unnest(tags) AS tag, count(*) AS count").
		Group("tag").
		Order("tag asc").
		Scan(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *ArticleRepository) Get(ctx context.Context, id string) (domain.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).Preload("Author").
		Take(&article, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Article{}, domain.NotFoundError{Resource: "article"}
	}
	if err != nil {
		return domain.Article{}, err
	}
	return articleToDomain(article), nil
}

func (r *ArticleRepository) GetPublishedBySlug(ctx context.Context, slug string) (domain.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).Preload("Author").
		Where("slug = ? AND status = ?", slug, domain.StatusPublished).
		Take(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Article{}, domain.NotFoundError{Resource: "article"}
	}
	if err != nil {
		return domain.Article{}, err
	}
	return articleToDomain(article), nil
}

func (r *ArticleRepository) Create(ctx context.Context, input domain.ArticleInput, authorID string) (domain.Article, error) {
	article := models.Article{
		ID:        uuid.NewString(),
		Slug:      input.Slug,
		Title:     localizedJSON(input.Title),
		Content:   localizedJSON(input.Content),
		Excerpt:   localizedJSON(input.Excerpt),
		Tags:      pq.StringArray(input.Tags),
		Status:    input.Status,
		AuthorID:  authorID,
		UpdatedAt: time.Now(),
	}
	if article.Status == "" {
		article.Status = domain.StatusDraft
	}
	if article.Status == domain.StatusPublished {
		now := time.Now()
		article.PublishedAt = &now
	}

	err := r.db.WithContext(ctx).Create(&article).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.Article{}, domain.ConflictError{Resource: "article slug"}
	}
	if err != nil {
		return domain.Article{}, err
	}
	return r.Get(ctx, article.ID)
}

func (r *ArticleRepository) Update(ctx context.Context, id string, input domain.ArticleInput) (domain.Article, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Article
		err := tx.Take(&existing, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFoundError{Resource: "article"}
		}
		if err != nil {
			return err
		}

		if input.Slug != "" && input.Slug != existing.Slug {
			var count int64
			if err := tx.Model(&models.Article{}).
				Where("slug = ? AND id <> ?", input.Slug, id).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return domain.ConflictError{Resource: "article slug"}
			}
		}

		publishedAt := existing.PublishedAt
		if input.Status == domain.StatusPublished && publishedAt == nil {
			now := time.Now()
			publishedAt = &now
		}

		updates := map[string]any{
			"slug":         input.Slug,
			"title":        localizedJSON(input.Title),
			"content":      localizedJSON(input.Content),
			"excerpt":      localizedJSON(input.Excerpt),
			"tags":         pq.StringArray(input.Tags),
			"status":       input.Status,
			"published_at": publishedAt,
			"updated_at":   time.Now(),
		}
		if input.Slug == "" {
			delete(updates, "slug")
		}
		if input.Status == "" {
			delete(updates, "status")
			delete(updates, "published_at")
		}

		return tx.Model(&models.Article{}).Where("id = ?", id).Updates(updates).Error
	})
	if err != nil {
		return domain.Article{}, err
	}
	return r.Get(ctx, id)
}

func (r *ArticleRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Article{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "article"}
	}
	return nil
}

func articleToDomain(a models.Article) domain.Article {
	return domain.Article{
		ID:          a.ID,
		Slug:        a.Slug,
		Title:       jsonLocalized(a.Title),
		Content:     jsonLocalized(a.Content),
		Excerpt:     jsonLocalized(a.Excerpt),
		Tags:        []string(a.Tags),
		Status:      a.Status,
		Author:      domain.UserRef{ID: a.AuthorID, Name: a.Author.Name},
		PublishedAt: a.PublishedAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
