package domain

import "time"

// Settings is the single site-wide configuration row.
type Settings struct {
	SiteName      string            `json:"siteName"`
	Languages     []string          `json:"languages"`
	DefaultLocale string            `json:"defaultLocale"`
	Theme         map[string]any    `json:"theme,omitempty"`
	SocialLinks   map[string]string `json:"socialLinks,omitempty"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}
