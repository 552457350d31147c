package repository

import (
	"context"

	"github.com/venturewayfinder/backend/domain"
)

// JourneyRepository persists journey snapshots as whole blobs keyed by user
// and journey identifiers. The return value of every mutation is the sole
// source of truth; callers save the full snapshot after each change.
type JourneyRepository interface {
	Load(ctx context.Context, userID, journeyID string) (*domain.Journey, error)
	Save(ctx context.Context, journey *domain.Journey) error
	Delete(ctx context.Context, userID, journeyID string) error
}
