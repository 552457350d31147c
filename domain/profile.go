package domain

import (
	"encoding/json"
	"time"
)

// BusinessProfile is the structured record replacing the loosely-typed
// business data blob the legacy client kept. Every optional field has exactly
// one canonical name; legacy synonyms are collapsed by ParseLegacyProfile at
// the import boundary.
type BusinessProfile struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	BusinessName string    `json:"business_name,omitempty"`
	Problem      string    `json:"problem,omitempty"`
	Solution     string    `json:"solution,omitempty"`
	TargetMarket string    `json:"target_market,omitempty"`
	RevenueModel string    `json:"revenue_model,omitempty"`
	Stage        string    `json:"stage,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	Version      int       `json:"version"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (p *BusinessProfile) Touch() {
	if p == nil {
		return
	}
	p.UpdatedAt = time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = p.UpdatedAt
	}
}

// legacyProfile mirrors the duck-typed shape older clients stored: several
// overlapping keys for the same concept.
type legacyProfile struct {
	BusinessName string `json:"businessName"`
	Name         string `json:"name"`
	Problem      string `json:"problem"`
	Challenge    string `json:"challenge"`
	Solution     string `json:"solution"`
	BusinessIdea string `json:"businessIdea"`
	TargetMarket string `json:"targetMarket"`
	Audience     string `json:"audience"`
	RevenueModel string `json:"revenueModel"`
	Monetization string `json:"monetization"`
	Stage        string `json:"stage"`
	Notes        string `json:"notes"`
}

// ParseLegacyProfile converts a legacy business blob into the structured
// record. For each concept the canonical key wins; the synonym is only used
// when the canonical key is absent.
func ParseLegacyProfile(data []byte) (*BusinessProfile, error) {
	var raw legacyProfile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, WrapError(ErrCodeInvalid, "malformed legacy profile payload", err)
	}

	profile := &BusinessProfile{
		BusinessName: firstNonEmpty(raw.BusinessName, raw.Name),
		Problem:      firstNonEmpty(raw.Problem, raw.Challenge),
		Solution:     firstNonEmpty(raw.Solution, raw.BusinessIdea),
		TargetMarket: firstNonEmpty(raw.TargetMarket, raw.Audience),
		RevenueModel: firstNonEmpty(raw.RevenueModel, raw.Monetization),
		Stage:        raw.Stage,
		Notes:        raw.Notes,
	}
	return profile, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
