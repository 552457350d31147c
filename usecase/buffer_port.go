package usecase

import (
	"context"

	"github.com/venturewayfinder/backend/domain"
)

// Operation names shared with the buffer infrastructure.
const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// OperationBuffer abstracts the offline write buffer so use cases stay
// storage-agnostic.
type OperationBuffer interface {
	BufferUser(ctx context.Context, operation string, user *domain.User) error
	BufferJourney(ctx context.Context, operation string, journey *domain.Journey) error
	BufferBusinessProfile(ctx context.Context, operation string, profile *domain.BusinessProfile) error
}
