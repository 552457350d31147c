package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/venturewayfinder/backend/domain"
	"github.com/venturewayfinder/backend/repository"
)

type quizResultRepository struct {
	pool *pgxpool.Pool
}

// NewQuizResultRepository creates a Postgres-backed quiz result repository.
func NewQuizResultRepository(pool *pgxpool.Pool) repository.QuizResultRepository {
	return &quizResultRepository{pool: pool}
}

func (r *quizResultRepository) Save(ctx context.Context, result *domain.QuizResult) error {
	if result == nil || result.ID == "" || result.UserID == "" {
		return domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO quiz_results (id, user_id, persona, tally, taken_at)
	VALUES ($1, $2, $3, $4, COALESCE($5, NOW()))
	`

	tally := marshalMap(result.Tally)

	_, err := r.pool.Exec(ctx, query,
		result.ID,
		result.UserID,
		string(result.Persona),
		tally,
		nullTime(result.TakenAt),
	)
	return err
}

func (r *quizResultRepository) GetLatestByUser(ctx context.Context, userID string) (*domain.QuizResult, error) {
	const query = `
	SELECT id, user_id, persona, tally, taken_at
	FROM quiz_results
	WHERE user_id = $1
	ORDER BY taken_at DESC
	LIMIT 1
	`
	row := r.pool.QueryRow(ctx, query, userID)

	var result domain.QuizResult
	var tally []byte

	if err := row.Scan(
		&result.ID,
		&result.UserID,
		&result.Persona,
		&tally,
		&result.TakenAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrQuizResultNotFound
		}
		return nil, err
	}

	if len(tally) > 0 {
		_ = json.Unmarshal(tally, &result.Tally)
	}
	return &result, nil
}
