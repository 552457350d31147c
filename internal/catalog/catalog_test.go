package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdeasAreWellFormed(t *testing.T) {
	templates := Ideas()
	require.NotEmpty(t, templates)

	seen := make(map[string]bool, len(templates))
	for _, tpl := range templates {
		assert.NotEmpty(t, tpl.ID)
		assert.NotEmpty(t, tpl.Title)
		assert.False(t, seen[tpl.ID], "duplicate template id %s", tpl.ID)
		seen[tpl.ID] = true

		assert.NotEmpty(t, tpl.Passions, "template %s needs passions", tpl.ID)
		assert.NotEmpty(t, tpl.Skills, "template %s needs skills", tpl.ID)
		assert.True(t, tpl.Budget.IsValid(), "template %s budget tier", tpl.ID)
		assert.True(t, tpl.TimeDemand.IsValid(), "template %s time tier", tpl.ID)
	}
}

func TestIdeasReturnsACopy(t *testing.T) {
	first := Ideas()
	first[0].Title = "mutated"
	assert.NotEqual(t, "mutated", Ideas()[0].Title)
}

func TestStepTemplates(t *testing.T) {
	seed, ok := StepTemplate("idea-validation")
	require.True(t, ok)
	assert.Equal(t, "idea-validation", seed.StepID)
	assert.NotEmpty(t, seed.Categories)
	for _, cat := range seed.Categories {
		assert.NotEmpty(t, cat.Title)
		assert.NotEmpty(t, cat.Subtasks)
	}

	_, ok = StepTemplate("nonexistent")
	assert.False(t, ok)
}
