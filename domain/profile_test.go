package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLegacyProfileCanonicalKeysWin(t *testing.T) {
	profile, err := ParseLegacyProfile([]byte(`{
		"businessName": "Wayfinder Coffee",
		"solution": "Subscription coffee delivery",
		"businessIdea": "An older duplicate of the same idea",
		"targetMarket": "Remote workers",
		"monetization": "Monthly plans"
	}`))
	require.NoError(t, err)

	assert.Equal(t, "Wayfinder Coffee", profile.BusinessName)
	assert.Equal(t, "Subscription coffee delivery", profile.Solution)
	assert.Equal(t, "Remote workers", profile.TargetMarket)
	// monetization fills in because revenueModel is absent.
	assert.Equal(t, "Monthly plans", profile.RevenueModel)
}

func TestParseLegacyProfileSynonymFallback(t *testing.T) {
	profile, err := ParseLegacyProfile([]byte(`{
		"name": "Side Hustle",
		"businessIdea": "Sell study guides",
		"challenge": "Students can't find good notes",
		"audience": "University students"
	}`))
	require.NoError(t, err)

	assert.Equal(t, "Side Hustle", profile.BusinessName)
	assert.Equal(t, "Sell study guides", profile.Solution)
	assert.Equal(t, "Students can't find good notes", profile.Problem)
	assert.Equal(t, "University students", profile.TargetMarket)
}

func TestParseLegacyProfileRejectsMalformedPayload(t *testing.T) {
	_, err := ParseLegacyProfile([]byte(`{not json`))
	require.Error(t, err)
	assert.True(t, IsDomainError(err, ErrCodeInvalid))
}
