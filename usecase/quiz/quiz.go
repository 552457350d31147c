// Package quiz scores personality quiz submissions into an entrepreneur
// persona and persists the result.
package quiz

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/venturewayfinder/backend/domain"
	"github.com/venturewayfinder/backend/repository"
)

type UseCase struct {
	results repository.QuizResultRepository
	logger  *zap.Logger
}

func New(results repository.QuizResultRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		results: results,
		logger:  logger,
	}
}

// Submit scores the answers and stores the outcome for the user.
func (uc *UseCase) Submit(ctx context.Context, userID string, answers []domain.QuizAnswer) (*domain.QuizResult, error) {
	persona, tally, err := Score(answers)
	if err != nil {
		return nil, err
	}

	result := &domain.QuizResult{
		ID:      uuid.NewString(),
		UserID:  userID,
		Persona: persona,
		Tally:   tally,
		TakenAt: time.Now().UTC(),
	}
	if err := uc.results.Save(ctx, result); err != nil {
		return nil, err
	}
	uc.logger.Info("quiz result stored", zap.String("user_id", userID), zap.String("persona", string(persona)))
	return result, nil
}

func (uc *UseCase) LatestResult(ctx context.Context, userID string) (*domain.QuizResult, error) {
	return uc.results.GetLatestByUser(ctx, userID)
}

// Score tallies categorical answers and returns the persona with the highest
// count. Ties resolve to the earliest persona in domain.PersonaOrder. An
// empty submission or an unrecognized category is rejected.
func Score(answers []domain.QuizAnswer) (domain.Persona, map[domain.Persona]int, error) {
	if len(answers) == 0 {
		return "", nil, domain.NewError(domain.ErrCodeInvalid, "quiz submission carries no answers")
	}

	tally := make(map[domain.Persona]int, len(domain.PersonaOrder))
	for _, answer := range answers {
		if !answer.Category.IsValid() {
			return "", nil, domain.NewErrorf(domain.ErrCodeInvalid,
				"answer %q carries an unrecognized category %q", answer.QuestionID, string(answer.Category))
		}
		tally[answer.Category]++
	}

	var winner domain.Persona
	best := -1
	for _, persona := range domain.PersonaOrder {
		if count := tally[persona]; count > best {
			winner = persona
			best = count
		}
	}
	return winner, tally, nil
}
