package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:text"`
	Email     string    `json:"email" gorm:"type:text;uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"type:text;not null"`
	Name      string    `json:"name" gorm:"type:text"`
	Role      string    `json:"role" gorm:"type:text;not null;default:'EDITOR'"`
	CreatedAt time.Time `json:"createdAt" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"type:timestamp with time zone"`
}

type Page struct {
	ID            string         `json:"id" gorm:"primaryKey;type:text"`
	Slug          string         `json:"slug" gorm:"type:text;uniqueIndex;not null"`
	Title         datatypes.JSON `json:"title" gorm:"type:jsonb"`
	Content       datatypes.JSON `json:"content" gorm:"type:jsonb"`
	Excerpt       datatypes.JSON `json:"excerpt" gorm:"type:jsonb"`
	FeaturedImage *string        `json:"featuredImage" gorm:"type:text"`
	SEO           datatypes.JSON `json:"seo" gorm:"type:jsonb"`
	Status        string         `json:"status" gorm:"type:text;index;not null;default:'DRAFT'"`
	Template      string         `json:"template" gorm:"type:text"`
	ParentID      *string        `json:"parentId" gorm:"type:text;index"`
	SortOrder     int            `json:"sortOrder" gorm:"not null;default:0"`
	AuthorID      string         `json:"authorId" gorm:"type:text;index"`
	Author        User           `json:"-" gorm:"foreignKey:AuthorID"`
	PublishedAt   *time.Time     `json:"publishedAt" gorm:"type:timestamp with time zone"`
	CreatedAt     time.Time      `json:"createdAt" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	UpdatedAt     time.Time      `json:"updatedAt" gorm:"type:timestamp with time zone"`
}

// Revision rows are write-once. They are only ever inserted by the
// page repository and removed by the page delete cascade.
type Revision struct {
	ID        string         `json:"id" gorm:"primaryKey;type:text"`
	PageID    string         `json:"pageId" gorm:"type:text;index;not null"`
	Page      Page           `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	Title     datatypes.JSON `json:"title" gorm:"type:jsonb"`
	Content   datatypes.JSON `json:"content" gorm:"type:jsonb"`
	UserID    string         `json:"userId" gorm:"type:text;index"`
	User      User           `json:"-" gorm:"foreignKey:UserID"`
	CreatedAt time.Time      `json:"createdAt" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type Article struct {
	ID          string         `json:"id" gorm:"primaryKey;type:text"`
	Slug        string         `json:"slug" gorm:"type:text;uniqueIndex;not null"`
	Title       datatypes.JSON `json:"title" gorm:"type:jsonb"`
	Content     datatypes.JSON `json:"content" gorm:"type:jsonb"`
	Excerpt     datatypes.JSON `json:"excerpt" gorm:"type:jsonb"`
	Tags        pq.StringArray `json:"tags" gorm:"type:text[]"`
	Status      string         `json:"status" gorm:"type:text;index;not null;default:'DRAFT'"`
	AuthorID    string         `json:"authorId" gorm:"type:text;index"`
	Author      User           `json:"-" gorm:"foreignKey:AuthorID"`
	PublishedAt *time.Time     `json:"publishedAt" gorm:"type:timestamp with time zone;index"`
	CreatedAt   time.Time      `json:"createdAt" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	UpdatedAt   time.Time      `json:"updatedAt" gorm:"type:timestamp with time zone"`
}

type Event struct {
	ID          string         `json:"id" gorm:"primaryKey;type:text"`
	Slug        string         `json:"slug" gorm:"type:text;uniqueIndex;not null"`
	Title       datatypes.JSON `json:"title" gorm:"type:jsonb"`
	Description datatypes.JSON `json:"description" gorm:"type:jsonb"`
	Location    datatypes.JSON `json:"location" gorm:"type:jsonb"`
	StartsAt    time.Time      `json:"startsAt" gorm:"type:timestamp with time zone;index;not null"`
	EndsAt      *time.Time     `json:"endsAt" gorm:"type:timestamp with time zone"`
	CreatedAt   time.Time      `json:"createdAt" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	UpdatedAt   time.Time      `json:"updatedAt" gorm:"type:timestamp with time zone"`
}
