package domain

import "time"

// PageView is one tracked view of a public path. Visitor is an
// anonymous fingerprint, not an identity.
type PageView struct {
	Path      string    `json:"path"`
	Referrer  string    `json:"referrer,omitempty"`
	Locale    string    `json:"locale,omitempty"`
	Visitor   string    `json:"visitor"`
	CreatedAt time.Time `json:"createdAt"`
}

// PathCount is an aggregated view count for one path.
type PathCount struct {
	Path  string `json:"path"`
	Count int64  `json:"count"`
}

// Stats is the admin analytics summary over a trailing window.
type Stats struct {
	Days           int         `json:"days"`
	TotalViews     int64       `json:"totalViews"`
	UniqueVisitors int64       `json:"uniqueVisitors"`
	TopPaths       []PathCount `json:"topPaths"`
}
