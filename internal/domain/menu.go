package domain

import "github.com/angulacms/angula/locale"

// Menu is a named navigation tree with at most two levels of items.
type Menu struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

// MenuItem is one entry of a menu. PageID is a weak reference: the
// target page may be deleted out from under it, in which case the
// item renders with no link.
type MenuItem struct {
	ID        string           `json:"id"`
	Label     locale.Localized `json:"label"`
	URL       *string          `json:"url,omitempty"`
	PageID    *string          `json:"pageId,omitempty"`
	Target    string           `json:"target"`
	SortOrder int              `json:"sortOrder"`
	Children  []MenuItem       `json:"children,omitempty"`
}

// MenuItemInput is a submitted menu item. The whole tree is replaced
// on every save; sort order is derived from array position.
type MenuItemInput struct {
	Label    locale.Localized `json:"label"`
	URL      *string          `json:"url"`
	PageID   *string          `json:"pageId"`
	Target   string           `json:"target"`
	Children []MenuItemInput  `json:"children"`
}
