package repository

import (
	"context"

	"github.com/venturewayfinder/backend/domain"
)

type ProfileRepository interface {
	GetByUser(ctx context.Context, userID string) (*domain.BusinessProfile, error)
	Save(ctx context.Context, profile *domain.BusinessProfile) error
}
