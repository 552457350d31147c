package journey

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/venturewayfinder/backend/domain"
	"github.com/venturewayfinder/backend/internal/catalog"
	"github.com/venturewayfinder/backend/repository"
	"github.com/venturewayfinder/backend/usecase"
)

// UseCase orchestrates journey snapshots: load from the store, apply one pure
// mutation, save the result. The store's saved snapshot is the sole source of
// truth for subsequent requests.
type UseCase struct {
	journeys repository.JourneyRepository
	buffer   usecase.OperationBuffer
	logger   *zap.Logger
}

func New(journeys repository.JourneyRepository, buffer usecase.OperationBuffer, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		journeys: journeys,
		buffer:   buffer,
		logger:   logger,
	}
}

func (uc *UseCase) GetJourney(ctx context.Context, userID, journeyID string) (*domain.Journey, error) {
	return uc.journeys.Load(ctx, userID, journeyID)
}

// CreateTaskFromStep appends a task seeded from the step catalog to the
// journey. Seeded tasks start pending with all subtasks incomplete.
func (uc *UseCase) CreateTaskFromStep(ctx context.Context, userID, journeyID, stepID string) (*domain.Journey, error) {
	seed, ok := catalog.StepTemplate(stepID)
	if !ok {
		return nil, domain.NewErrorf(domain.ErrCodeNotFound, "journey step %q not found", stepID)
	}

	j, err := uc.journeys.Load(ctx, userID, journeyID)
	if err != nil {
		return nil, err
	}

	task := domain.Task{
		ID:          uuid.NewString(),
		StepID:      seed.StepID,
		Title:       seed.Title,
		Description: seed.Description,
		Status:      domain.StatusPending,
		Resources:   append([]string(nil), seed.Resources...),
	}
	for _, cs := range seed.Categories {
		cat := domain.Category{
			ID:    uuid.NewString(),
			Title: cs.Title,
		}
		for _, title := range cs.Subtasks {
			cat.Subtasks = append(cat.Subtasks, domain.Subtask{
				ID:    uuid.NewString(),
				Title: title,
			})
		}
		task.Categories = append(task.Categories, cat)
	}

	j.Tasks = append(j.Tasks, task)
	return uc.save(ctx, j)
}

func (uc *UseCase) ToggleSubtask(ctx context.Context, userID, journeyID, taskID, categoryID, subtaskID string, completed bool) (*domain.Journey, error) {
	return uc.apply(ctx, userID, journeyID, func(tasks []domain.Task) ([]domain.Task, error) {
		return ToggleSubtask(tasks, taskID, categoryID, subtaskID, completed)
	})
}

func (uc *UseCase) AddSubtask(ctx context.Context, userID, journeyID, taskID, categoryID, title string) (*domain.Journey, error) {
	if title == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "subtask title is required")
	}
	return uc.apply(ctx, userID, journeyID, func(tasks []domain.Task) ([]domain.Task, error) {
		return AddSubtask(tasks, taskID, categoryID, title)
	})
}

func (uc *UseCase) RemoveSubtask(ctx context.Context, userID, journeyID, taskID, categoryID, subtaskID string) (*domain.Journey, error) {
	return uc.apply(ctx, userID, journeyID, func(tasks []domain.Task) ([]domain.Task, error) {
		return RemoveSubtask(tasks, taskID, categoryID, subtaskID)
	})
}

func (uc *UseCase) ToggleCategoryCollapsed(ctx context.Context, userID, journeyID, taskID, categoryID string) (*domain.Journey, error) {
	return uc.apply(ctx, userID, journeyID, func(tasks []domain.Task) ([]domain.Task, error) {
		return ToggleCategoryCollapsed(tasks, taskID, categoryID)
	})
}

func (uc *UseCase) SetDeadline(ctx context.Context, userID, journeyID, taskID string, deadline *time.Time) (*domain.Journey, error) {
	return uc.apply(ctx, userID, journeyID, func(tasks []domain.Task) ([]domain.Task, error) {
		return SetDeadline(tasks, taskID, deadline)
	})
}

func (uc *UseCase) SetStatusExplicit(ctx context.Context, userID, journeyID, taskID string, status domain.TaskStatus) (*domain.Journey, error) {
	return uc.apply(ctx, userID, journeyID, func(tasks []domain.Task) ([]domain.Task, error) {
		return SetStatusExplicit(tasks, taskID, status)
	})
}

func (uc *UseCase) apply(ctx context.Context, userID, journeyID string, mutate func([]domain.Task) ([]domain.Task, error)) (*domain.Journey, error) {
	j, err := uc.journeys.Load(ctx, userID, journeyID)
	if err != nil {
		return nil, err
	}

	tasks, err := mutate(j.Tasks)
	if err != nil {
		return nil, err
	}
	j.Tasks = tasks
	return uc.save(ctx, j)
}

func (uc *UseCase) save(ctx context.Context, j *domain.Journey) (*domain.Journey, error) {
	j.UpdatedAt = time.Now().UTC()
	if err := uc.journeys.Save(ctx, j); err != nil {
		if uc.shouldBuffer(ctx, usecase.OperationUpdate, j) {
			return j, nil
		}
		return nil, err
	}
	return j, nil
}

func (uc *UseCase) shouldBuffer(ctx context.Context, operation string, j *domain.Journey) bool {
	if uc.buffer == nil {
		return false
	}
	if err := uc.buffer.BufferJourney(ctx, operation, j); err != nil {
		uc.logger.Error("failed to buffer journey operation", zap.String("operation", operation), zap.Error(err))
		return false
	}
	uc.logger.Warn("journey operation buffered", zap.String("operation", operation), zap.String("journey_id", j.ID))
	return true
}
