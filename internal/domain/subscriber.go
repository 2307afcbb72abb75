package domain

import "time"

// Subscriber is a newsletter subscription. Subscriptions start
// unverified and become verified via the emailed confirm token.
type Subscriber struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         *string   `json:"name,omitempty"`
	Verified     bool      `json:"verified"`
	Token        string    `json:"-"`
	SubscribedAt time.Time `json:"subscribedAt"`
}
