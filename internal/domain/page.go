package domain

import (
	"time"

	"github.com/angulacms/angula/locale"
)

// Page is an editable content page with revision-tracked title and
// content fields.
type Page struct {
	ID            string           `json:"id"`
	Slug          string           `json:"slug"`
	Title         locale.Localized `json:"title"`
	Content       locale.Localized `json:"content"`
	Excerpt       locale.Localized `json:"excerpt,omitempty"`
	FeaturedImage *string          `json:"featuredImage,omitempty"`
	SEO           map[string]any   `json:"seo,omitempty"`
	Status        string           `json:"status"`
	Template      string           `json:"template,omitempty"`
	ParentID      *string          `json:"parentId,omitempty"`
	SortOrder     int              `json:"sortOrder"`
	Author        UserRef          `json:"author"`
	PublishedAt   *time.Time       `json:"publishedAt,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// PageInput carries the mutable fields of a page for create/update.
type PageInput struct {
	Slug          string           `json:"slug"`
	Title         locale.Localized `json:"title"`
	Content       locale.Localized `json:"content"`
	Excerpt       locale.Localized `json:"excerpt"`
	FeaturedImage *string          `json:"featuredImage"`
	SEO           map[string]any   `json:"seo"`
	Status        string           `json:"status"`
	Template      string           `json:"template"`
	ParentID      *string          `json:"parentId"`
	SortOrder     int              `json:"sortOrder"`
}

// Revision is an immutable snapshot of a page's title and content,
// taken before every mutation so the overwritten state stays
// recoverable. Newest revisions sort first.
type Revision struct {
	ID        string           `json:"id"`
	PageID    string           `json:"pageId"`
	Title     locale.Localized `json:"title"`
	Content   locale.Localized `json:"content"`
	User      UserRef          `json:"user"`
	CreatedAt time.Time        `json:"createdAt"`
}

// UserRef is the author attribution embedded in pages and revisions.
type UserRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
