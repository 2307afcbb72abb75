package domain

// Request-scoped context keys set by the auth middleware.
const (
	RequesterIdCtxKey   = "cms-requesterId"
	RequesterRoleCtxKey = "cms-requesterRole"
)

// Publication states for pages and articles.
const (
	StatusDraft     = "DRAFT"
	StatusPublished = "PUBLISHED"
	StatusScheduled = "SCHEDULED"
	StatusArchived  = "ARCHIVED"
)

// User roles.
const (
	RoleAdmin  = "ADMIN"
	RoleEditor = "EDITOR"
	RoleViewer = "VIEWER"
)

// Menu item open-target hints.
const (
	TargetSelf  = "_self"
	TargetBlank = "_blank"
)
