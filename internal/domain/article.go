package domain

import (
	"time"

	"github.com/angulacms/angula/locale"
)

// Article is a news entry.
type Article struct {
	ID          string           `json:"id"`
	Slug        string           `json:"slug"`
	Title       locale.Localized `json:"title"`
	Content     locale.Localized `json:"content"`
	Excerpt     locale.Localized `json:"excerpt,omitempty"`
	Tags        []string         `json:"tags"`
	Status      string           `json:"status"`
	Author      UserRef          `json:"author"`
	PublishedAt *time.Time       `json:"publishedAt,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// TagCount is a distinct article tag with its usage count.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int64  `json:"count"`
}

// ArticleInput carries the mutable fields of an article.
type ArticleInput struct {
	Slug    string           `json:"slug"`
	Title   locale.Localized `json:"title"`
	Content locale.Localized `json:"content"`
	Excerpt locale.Localized `json:"excerpt"`
	Tags    []string         `json:"tags"`
	Status  string           `json:"status"`
}
