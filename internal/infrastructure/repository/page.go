package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/angulacms/angula/internal/domain"
	"github.com/angulacms/angula/internal/infrastructure/database/models"
)

type PageRepository struct {
	db *gorm.DB
}

func NewPageRepository(db *gorm.DB) *PageRepository {
	return &PageRepository{db: db}
}

func (r *PageRepository) List(ctx context.Context, status string, offset, limit int) ([]domain.Page, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Page{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var pages []models.Page
	err := query.Preload("Author").
		Order("sort_order asc, created_at desc").
		Offset(offset).Limit(limit).
		Find(&pages).Error
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.Page, 0, len(pages))
	for _, p := range pages {
		result = append(result, pageToDomain(p))
	}
	return result, total, nil
}

func (r *PageRepository) Get(ctx context.Context, id string) (domain.Page, error) {
	var page models.Page
	err := r.db.WithContext(ctx).Preload("Author").
		Take(&page, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Page{}, domain.NotFoundError{Resource: "page"}
	}
	if err != nil {
		return domain.Page{}, err
	}
	return pageToDomain(page), nil
}

func (r *PageRepository) GetPublishedBySlug(ctx context.Context, slug string) (domain.Page, error) {
	var page models.Page
	err := r.db.WithContext(ctx).Preload("Author").
		Where("slug = ? AND status = ?", slug, domain.StatusPublished).
		Take(&page).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Page{}, domain.NotFoundError{Resource: "page"}
	}
	if err != nil {
		return domain.Page{}, err
	}
	return pageToDomain(page), nil
}

func (r *PageRepository) Create(ctx context.Context, input domain.PageInput, authorID string) (domain.Page, error) {
	page := models.Page{
		ID:            uuid.NewString(),
		Slug:          input.Slug,
		Title:         localizedJSON(input.Title),
		Content:       localizedJSON(input.Content),
		Excerpt:       localizedJSON(input.Excerpt),
		FeaturedImage: input.FeaturedImage,
		SEO:           mapJSON(input.SEO),
		Status:        input.Status,
		Template:      input.Template,
		ParentID:      input.ParentID,
		SortOrder:     input.SortOrder,
		AuthorID:      authorID,
		UpdatedAt:     time.Now(),
	}
	if page.Status == "" {
		page.Status = domain.StatusDraft
	}
	if page.Status == domain.StatusPublished {
		now := time.Now()
		page.PublishedAt = &now
	}

	err := r.db.WithContext(ctx).Create(&page).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.Page{}, domain.ConflictError{Resource: "page slug"}
	}
	if err != nil {
		return domain.Page{}, err
	}
	return r.Get(ctx, page.ID)
}

// Update overwrites the page's mutable fields. The pre-update title
// and content are captured as a revision inside the same transaction;
// if the snapshot cannot be written the update does not happen.
func (r *PageRepository) Update(ctx context.Context, id string, input domain.PageInput, requesterID string) (domain.Page, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var existing models.Page
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Take(&existing, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFoundError{Resource: "page"}
		}
		if err != nil {
			return err
		}

		if input.Slug != "" && input.Slug != existing.Slug {
			var count int64
			if err := tx.Model(&models.Page{}).
				Where("slug = ? AND id <> ?", input.Slug, id).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return domain.ConflictError{Resource: "page slug"}
			}
		}

		if err := insertSnapshot(tx, existing, requesterID); err != nil {
			return err
		}

		publishedAt := existing.PublishedAt
		if input.Status == domain.StatusPublished && publishedAt == nil {
			now := time.Now()
			publishedAt = &now
		}

		return tx.Model(&models.Page{}).Where("id = ?", id).
			Updates(pageUpdateColumns(input, publishedAt)).Error
	})
	if err != nil {
		return domain.Page{}, err
	}

	return r.Get(ctx, id)
}

func (r *PageRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var page models.Page
		err := tx.Take(&page, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFoundError{Resource: "page"}
		}
		if err != nil {
			return err
		}
		if err := tx.Delete(&models.Revision{}, "page_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Page{}, "id = ?", id).Error
	})
}

func (r *PageRepository) ListRevisions(ctx context.Context, pageID string) ([]domain.Revision, error) {
	var revisions []models.Revision
	err := r.db.WithContext(ctx).Preload("User").
		Where("page_id = ?", pageID).
		Order("created_at desc").
		Find(&revisions).Error
	if err != nil {
		return nil, err
	}

	result := make([]domain.Revision, 0, len(revisions))
	for _, rev := range revisions {
		result = append(result, revisionToDomain(rev))
	}
	return result, nil
}

// Restore rolls the page back to a revision's captured fields. The
// pre-restore state is snapshotted first, inside the same
// transaction, so a restore never loses data.
func (r *PageRepository) Restore(ctx context.Context, pageID, revisionID, requesterID string) (domain.Page, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var revision models.Revision
		err := tx.Take(&revision, "id = ?", revisionID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFoundError{Resource: "revision"}
		}
		if err != nil {
			return err
		}
		if revision.PageID != pageID {
			// Reject restore requests that pair a revision with the
			// wrong page.
			return domain.NotFoundError{Resource: "revision"}
		}

		var page models.Page
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Take(&page, "id = ?", pageID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFoundError{Resource: "page"}
		}
		if err != nil {
			return err
		}

		if err := insertSnapshot(tx, page, requesterID); err != nil {
			return err
		}

		return tx.Model(&models.Page{}).Where("id = ?", pageID).Updates(map[string]any{
			"title":      revision.Title,
			"content":    revision.Content,
			"updated_at": time.Now(),
		}).Error
	})
	if err != nil {
		return domain.Page{}, err
	}

	return r.Get(ctx, pageID)
}

// pageUpdateColumns builds the column assignments for a page update.
// Fields absent from the request body (nil maps and pointers, empty
// strings) keep their stored value; an explicit empty map clears the
// field.
func pageUpdateColumns(input domain.PageInput, publishedAt *time.Time) map[string]any {
	updates := map[string]any{
		"sort_order": input.SortOrder,
		"updated_at": time.Now(),
	}
	if input.Slug != "" {
		updates["slug"] = input.Slug
	}
	if input.Title != nil {
		updates["title"] = localizedJSON(input.Title)
	}
	if input.Content != nil {
		updates["content"] = localizedJSON(input.Content)
	}
	if input.Excerpt != nil {
		updates["excerpt"] = localizedJSON(input.Excerpt)
	}
	if input.SEO != nil {
		updates["seo"] = mapJSON(input.SEO)
	}
	if input.FeaturedImage != nil {
		updates["featured_image"] = input.FeaturedImage
	}
	if input.Template != "" {
		updates["template"] = input.Template
	}
	if input.ParentID != nil {
		updates["parent_id"] = input.ParentID
	}
	if input.Status != "" {
		updates["status"] = input.Status
		updates["published_at"] = publishedAt
	}
	return updates
}

// newSnapshot captures the page's current title and content as an
// immutable revision row. Must be built from the row as read inside
// the mutating transaction, before any column is touched.
func newSnapshot(page models.Page, userID string) models.Revision {
	return models.Revision{
		ID:      uuid.NewString(),
		PageID:  page.ID,
		Title:   page.Title,
		Content: page.Content,
		UserID:  userID,
	}
}

func insertSnapshot(tx *gorm.DB, page models.Page, userID string) error {
	rev := newSnapshot(page, userID)
	return tx.Create(&rev).Error
}

func pageToDomain(p models.Page) domain.Page {
	return domain.Page{
		ID:            p.ID,
		Slug:          p.Slug,
		Title:         jsonLocalized(p.Title),
		Content:       jsonLocalized(p.Content),
		Excerpt:       jsonLocalized(p.Excerpt),
		FeaturedImage: p.FeaturedImage,
		SEO:           jsonMap(p.SEO),
		Status:        p.Status,
		Template:      p.Template,
		ParentID:      p.ParentID,
		SortOrder:     p.SortOrder,
		Author:        domain.UserRef{ID: p.AuthorID, Name: p.Author.Name},
		PublishedAt:   p.PublishedAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func revisionToDomain(r models.Revision) domain.Revision {
	return domain.Revision{
		ID:        r.ID,
		PageID:    r.PageID,
		Title:     jsonLocalized(r.Title),
		Content:   jsonLocalized(r.Content),
		User:      domain.UserRef{ID: r.UserID, Name: r.User.Name},
		CreatedAt: r.CreatedAt,
	}
}
