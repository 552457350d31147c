package profile

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/venturewayfinder/backend/domain"
	"github.com/venturewayfinder/backend/repository"
	"github.com/venturewayfinder/backend/usecase"
)

// UseCase covers the user profile and the structured business profile.
type UseCase struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
	buffer   usecase.OperationBuffer
	logger   *zap.Logger
}

func New(users repository.UserRepository, profiles repository.ProfileRepository, buffer usecase.OperationBuffer, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:    users,
		profiles: profiles,
		buffer:   buffer,
		logger:   logger,
	}
}

func (uc *UseCase) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return uc.users.GetByID(ctx, userID)
}

func (uc *UseCase) UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := uc.users.Upsert(ctx, user); err != nil {
		if uc.buffer != nil {
			if bufErr := uc.buffer.BufferUser(ctx, usecase.OperationUpdate, user); bufErr != nil {
				uc.logger.Error("failed to buffer user update", zap.Error(bufErr))
				return nil, err
			}
			uc.logger.Warn("user update buffered due to repository error", zap.Error(err))
			return user, nil
		}
		return nil, err
	}
	return user, nil
}

func (uc *UseCase) GetBusinessProfile(ctx context.Context, userID string) (*domain.BusinessProfile, error) {
	return uc.profiles.GetByUser(ctx, userID)
}

// SaveBusinessProfile upserts the structured business record, bumping its
// version.
func (uc *UseCase) SaveBusinessProfile(ctx context.Context, profile *domain.BusinessProfile) (*domain.BusinessProfile, error) {
	if profile == nil || profile.UserID == "" {
		return nil, domain.ErrInvalidPayload
	}
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	profile.Version++
	profile.Touch()

	if err := uc.profiles.Save(ctx, profile); err != nil {
		if uc.buffer != nil {
			if bufErr := uc.buffer.BufferBusinessProfile(ctx, usecase.OperationUpdate, profile); bufErr != nil {
				uc.logger.Error("failed to buffer business profile", zap.Error(bufErr))
				return nil, err
			}
			uc.logger.Warn("business profile buffered due to repository error", zap.Error(err))
			return profile, nil
		}
		return nil, err
	}
	return profile, nil
}

// ImportLegacyProfile converts a legacy client blob into the structured
// record and stores it under the user.
func (uc *UseCase) ImportLegacyProfile(ctx context.Context, userID string, payload []byte) (*domain.BusinessProfile, error) {
	profile, err := domain.ParseLegacyProfile(payload)
	if err != nil {
		return nil, err
	}
	profile.UserID = userID
	return uc.SaveBusinessProfile(ctx, profile)
}
