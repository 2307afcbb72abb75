package models

import (
	"gorm.io/datatypes"
)

type Menu struct {
	ID    string     `json:"id" gorm:"primaryKey;type:text"`
	Name  string     `json:"name" gorm:"type:text;uniqueIndex;not null"`
	Items []MenuItem `json:"items" gorm:"constraint:OnDelete:CASCADE;"`
}

// MenuItem.PageID deliberately carries no foreign key: deleting the
// referenced page must not delete the item, it just leaves a dangling
// reference that resolves to "no link" at render time.
type MenuItem struct {
	ID        string         `json:"id" gorm:"primaryKey;type:text"`
	MenuID    string         `json:"menuId" gorm:"type:text;index;not null"`
	ParentID  *string        `json:"parentId" gorm:"type:text;index"`
	Children  []MenuItem     `json:"children" gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE;"`
	Label     datatypes.JSON `json:"label" gorm:"type:jsonb"`
	URL       *string        `json:"url" gorm:"type:text"`
	PageID    *string        `json:"pageId" gorm:"type:text"`
	Target    string         `json:"target" gorm:"type:text;not null;default:'_self'"`
	SortOrder int            `json:"sortOrder" gorm:"not null;default:0"`
}
