package redis

import (
	"context"
	"encoding/json"
	"fmt"

	redislib "github.com/redis/go-redis/v9"

	"github.com/venturewayfinder/backend/domain"
	"github.com/venturewayfinder/backend/repository"
)

type journeyRepository struct {
	client *redislib.Client
	prefix string
}

// NewJourneyRepository creates a Redis-backed journey repository. Snapshots
// are stored as one JSON blob per user and journey; dates inside the blob
// round-trip as RFC 3339 strings, which existing stored data depends on.
func NewJourneyRepository(client *redislib.Client) repository.JourneyRepository {
	return &journeyRepository{
		client: client,
		prefix: "journey:",
	}
}

func (r *journeyRepository) Load(ctx context.Context, userID, journeyID string) (*domain.Journey, error) {
	result, err := r.client.Get(ctx, r.key(userID, journeyID)).Result()
	if err != nil {
		if err == redislib.Nil {
			return nil, domain.ErrJourneyNotFound
		}
		return nil, err
	}

	var journey domain.Journey
	if err := json.Unmarshal([]byte(result), &journey); err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "corrupt journey snapshot", err)
	}
	return &journey, nil
}

func (r *journeyRepository) Save(ctx context.Context, journey *domain.Journey) error {
	if journey == nil || journey.ID == "" || journey.UserID == "" {
		return domain.ErrInvalidPayload
	}

	payload, err := json.Marshal(journey)
	if err != nil {
		return err
	}

	// Snapshots persist indefinitely; the journey outlives any session.
	return r.client.Set(ctx, r.key(journey.UserID, journey.ID), payload, 0).Err()
}

func (r *journeyRepository) Delete(ctx context.Context, userID, journeyID string) error {
	return r.client.Del(ctx, r.key(userID, journeyID)).Err()
}

func (r *journeyRepository) key(userID, journeyID string) string {
	return fmt.Sprintf("%s%s:%s", r.prefix, userID, journeyID)
}
