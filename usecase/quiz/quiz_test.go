package quiz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venturewayfinder/backend/domain"
)

func answersFor(categories ...domain.Persona) []domain.QuizAnswer {
	answers := make([]domain.QuizAnswer, len(categories))
	for i, cat := range categories {
		answers[i] = domain.QuizAnswer{QuestionID: string(rune('a' + i)), Category: cat}
	}
	return answers
}

func TestScoreMajorityWins(t *testing.T) {
	persona, tally, err := Score(answersFor(
		domain.PersonaBuilder,
		domain.PersonaVisionary,
		domain.PersonaBuilder,
		domain.PersonaConnector,
		domain.PersonaBuilder,
	))
	require.NoError(t, err)
	assert.Equal(t, domain.PersonaBuilder, persona)
	assert.Equal(t, 3, tally[domain.PersonaBuilder])
	assert.Equal(t, 1, tally[domain.PersonaVisionary])
}

func TestScoreTieBreaksByPersonaOrder(t *testing.T) {
	// strategist and connector tie; strategist comes first in the fixed
	// persona order.
	persona, _, err := Score(answersFor(
		domain.PersonaConnector,
		domain.PersonaStrategist,
		domain.PersonaStrategist,
		domain.PersonaConnector,
	))
	require.NoError(t, err)
	assert.Equal(t, domain.PersonaStrategist, persona)
}

func TestScoreRejectsEmptySubmission(t *testing.T) {
	_, _, err := Score(nil)
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestScoreRejectsUnknownCategory(t *testing.T) {
	_, _, err := Score([]domain.QuizAnswer{{QuestionID: "q1", Category: "daydreamer"}})
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

type memoryResults struct {
	saved []*domain.QuizResult
}

func (m *memoryResults) Save(_ context.Context, result *domain.QuizResult) error {
	m.saved = append(m.saved, result)
	return nil
}

func (m *memoryResults) GetLatestByUser(_ context.Context, userID string) (*domain.QuizResult, error) {
	for i := len(m.saved) - 1; i >= 0; i-- {
		if m.saved[i].UserID == userID {
			return m.saved[i], nil
		}
	}
	return nil, domain.ErrQuizResultNotFound
}

func TestSubmitStoresResult(t *testing.T) {
	repo := &memoryResults{}
	uc := New(repo, nil)

	result, err := uc.Submit(context.Background(), "user-1", answersFor(
		domain.PersonaVisionary,
		domain.PersonaVisionary,
		domain.PersonaBuilder,
	))
	require.NoError(t, err)
	assert.Equal(t, domain.PersonaVisionary, result.Persona)
	assert.NotEmpty(t, result.ID)
	assert.False(t, result.TakenAt.IsZero())

	latest, err := uc.LatestResult(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, result, latest)
}

func TestSubmitRejectsInvalidAnswersWithoutSaving(t *testing.T) {
	repo := &memoryResults{}
	uc := New(repo, nil)

	_, err := uc.Submit(context.Background(), "user-1", nil)
	require.Error(t, err)
	assert.Empty(t, repo.saved)
}
