package services

import (
	"context"
	"encoding/json"

	"github.com/venturewayfinder/backend/domain"
	"github.com/venturewayfinder/backend/internal/infrastructure/buffer"
	"github.com/venturewayfinder/backend/usecase"
)

// BufferBridge adapts the buffer processor to the usecase.OperationBuffer port.
type BufferBridge struct {
	processor *BufferProcessor
}

func NewBufferBridge(processor *BufferProcessor) *BufferBridge {
	return &BufferBridge{processor: processor}
}

func (b *BufferBridge) BufferUser(ctx context.Context, operation string, user *domain.User) error {
	if b.processor == nil || user == nil {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	item := buffer.Item{
		UserID:    user.ID,
		Entity:    buffer.EntityUser,
		Operation: operation,
		Data:      payload,
		Priority:  3,
	}
	return b.processor.BufferOperation(ctx, item)
}

func (b *BufferBridge) BufferJourney(ctx context.Context, operation string, journey *domain.Journey) error {
	if b.processor == nil || journey == nil {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(journey)
	if err != nil {
		return err
	}
	item := buffer.Item{
		ID:        journey.ID,
		UserID:    journey.UserID,
		Entity:    buffer.EntityJourney,
		Operation: operation,
		Data:      payload,
		Priority:  4,
	}
	return b.processor.BufferOperation(ctx, item)
}

func (b *BufferBridge) BufferBusinessProfile(ctx context.Context, operation string, profile *domain.BusinessProfile) error {
	if b.processor == nil || profile == nil {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	item := buffer.Item{
		ID:        profile.ID,
		UserID:    profile.UserID,
		Entity:    buffer.EntityBusinessProfile,
		Operation: operation,
		Data:      payload,
		Priority:  3,
	}
	return b.processor.BufferOperation(ctx, item)
}

var _ usecase.OperationBuffer = (*BufferBridge)(nil)
