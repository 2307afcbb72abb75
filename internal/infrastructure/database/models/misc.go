package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Subscriber struct {
	ID           string    `json:"id" gorm:"primaryKey;type:text"`
	Email        string    `json:"email" gorm:"type:text;uniqueIndex;not null"`
	Name         *string   `json:"name" gorm:"type:text"`
	Verified     bool      `json:"verified" gorm:"not null;default:false"`
	Token        string    `json:"-" gorm:"type:text;uniqueIndex;not null"`
	SubscribedAt time.Time `json:"subscribedAt" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type PageView struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Path      string    `json:"path" gorm:"type:text;index;not null"`
	Referrer  string    `json:"referrer" gorm:"type:text"`
	Locale    string    `json:"locale" gorm:"type:text"`
	Visitor   string    `json:"visitor" gorm:"type:text;index"`
	CreatedAt time.Time `json:"createdAt" gorm:"->;<-:create;type:timestamp with time zone;index;not null;default:clock_timestamp()"`
}

// Settings is a single-row table keyed by a fixed ID.
type Settings struct {
	ID            string         `json:"-" gorm:"primaryKey;type:text"`
	SiteName      string         `json:"siteName" gorm:"type:text"`
	Languages     pq.StringArray `json:"languages" gorm:"type:text[]"`
	DefaultLocale string         `json:"defaultLocale" gorm:"type:text;not null;default:'en'"`
	Theme         datatypes.JSON `json:"theme" gorm:"type:jsonb"`
	SocialLinks   datatypes.JSON `json:"socialLinks" gorm:"type:jsonb"`
	UpdatedAt     time.Time      `json:"updatedAt" gorm:"type:timestamp with time zone"`
}
