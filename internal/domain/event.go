package domain

import (
	"time"

	"github.com/angulacms/angula/locale"
)

// Event is a calendar entry with localized title and description.
type Event struct {
	ID          string           `json:"id"`
	Slug        string           `json:"slug"`
	Title       locale.Localized `json:"title"`
	Description locale.Localized `json:"description,omitempty"`
	Location    locale.Localized `json:"location,omitempty"`
	StartsAt    time.Time        `json:"startsAt"`
	EndsAt      *time.Time       `json:"endsAt,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// EventInput carries the mutable fields of an event.
type EventInput struct {
	Slug        string           `json:"slug"`
	Title       locale.Localized `json:"title"`
	Description locale.Localized `json:"description"`
	Location    locale.Localized `json:"location"`
	StartsAt    time.Time        `json:"startsAt"`
	EndsAt      *time.Time       `json:"endsAt"`
}
