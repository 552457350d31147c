package domain

import "time"

// User represents an authenticated identity in the platform. Authentication
// itself happens at an external provider; this record mirrors what the
// provider issues plus subscription state.
type User struct {
	ID           string            `json:"id"`
	Email        string            `json:"email,omitempty"`
	Role         string            `json:"role"`
	Subscription string            `json:"subscription"`
	Status       string            `json:"status"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// Subscription tiers gating parts of the profile surface.
const (
	SubscriptionFree    = "free"
	SubscriptionPremium = "premium"
)

func (u *User) IsActive() bool {
	return u != nil && u.Status == "active"
}

func (u *User) IsPremium() bool {
	return u != nil && u.Subscription == SubscriptionPremium
}
