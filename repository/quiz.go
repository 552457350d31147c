package repository

import (
	"context"

	"github.com/venturewayfinder/backend/domain"
)

type QuizResultRepository interface {
	Save(ctx context.Context, result *domain.QuizResult) error
	GetLatestByUser(ctx context.Context, userID string) (*domain.QuizResult, error)
}
