package journey

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venturewayfinder/backend/domain"
	"github.com/venturewayfinder/backend/usecase"
)

type memoryRepo struct {
	journeys map[string]*domain.Journey
	saveErr  error
}

func newMemoryRepo(journeys ...*domain.Journey) *memoryRepo {
	repo := &memoryRepo{journeys: make(map[string]*domain.Journey)}
	for _, j := range journeys {
		repo.journeys[j.UserID+"/"+j.ID] = j
	}
	return repo
}

func (r *memoryRepo) Load(_ context.Context, userID, journeyID string) (*domain.Journey, error) {
	j, ok := r.journeys[userID+"/"+journeyID]
	if !ok {
		return nil, domain.ErrJourneyNotFound
	}
	clone := *j
	clone.Tasks = append([]domain.Task(nil), j.Tasks...)
	return &clone, nil
}

func (r *memoryRepo) Save(_ context.Context, j *domain.Journey) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.journeys[j.UserID+"/"+j.ID] = j
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, userID, journeyID string) error {
	delete(r.journeys, userID+"/"+journeyID)
	return nil
}

type recordingBuffer struct {
	journeys []*domain.Journey
}

func (b *recordingBuffer) BufferUser(context.Context, string, *domain.User) error { return nil }
func (b *recordingBuffer) BufferBusinessProfile(context.Context, string, *domain.BusinessProfile) error {
	return nil
}
func (b *recordingBuffer) BufferJourney(_ context.Context, _ string, j *domain.Journey) error {
	b.journeys = append(b.journeys, j)
	return nil
}

var _ usecase.OperationBuffer = (*recordingBuffer)(nil)

func seedJourney() *domain.Journey {
	return &domain.Journey{
		ID:     "journey-1",
		UserID: "user-1",
		Tasks:  seedTasks(),
	}
}

func TestUseCaseToggleSubtaskPersists(t *testing.T) {
	repo := newMemoryRepo(seedJourney())
	uc := New(repo, nil, nil)

	j, err := uc.ToggleSubtask(context.Background(), "user-1", "journey-1", "task-1", "cat-research", "st-1", true)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, taskByID(t, j.Tasks, "task-1").Status)
	assert.False(t, j.UpdatedAt.IsZero())

	// Reload confirms the snapshot was saved.
	reloaded, err := uc.GetJourney(context.Background(), "user-1", "journey-1")
	require.NoError(t, err)
	assert.True(t, taskByID(t, reloaded.Tasks, "task-1").Categories[0].Subtasks[0].Completed)
}

func TestUseCaseCreateTaskFromStep(t *testing.T) {
	repo := newMemoryRepo(seedJourney())
	uc := New(repo, nil, nil)

	j, err := uc.CreateTaskFromStep(context.Background(), "user-1", "journey-1", "idea-validation")
	require.NoError(t, err)
	require.Len(t, j.Tasks, 3)

	created := j.Tasks[2]
	assert.Equal(t, "idea-validation", created.StepID)
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.NotEmpty(t, created.Categories)
	for _, cat := range created.Categories {
		assert.NotEmpty(t, cat.ID)
		for _, st := range cat.Subtasks {
			assert.NotEmpty(t, st.ID)
			assert.False(t, st.Completed)
		}
	}
}

func TestUseCaseCreateTaskFromUnknownStep(t *testing.T) {
	uc := New(newMemoryRepo(seedJourney()), nil, nil)

	_, err := uc.CreateTaskFromStep(context.Background(), "user-1", "journey-1", "no-such-step")
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}

func TestUseCaseUnknownJourney(t *testing.T) {
	uc := New(newMemoryRepo(), nil, nil)

	_, err := uc.GetJourney(context.Background(), "user-1", "missing")
	assert.ErrorIs(t, err, domain.ErrJourneyNotFound)
}

func TestUseCaseBuffersWhenSaveFails(t *testing.T) {
	repo := newMemoryRepo(seedJourney())
	repo.saveErr = errors.New("redis unavailable")
	buf := &recordingBuffer{}
	uc := New(repo, buf, nil)

	j, err := uc.ToggleSubtask(context.Background(), "user-1", "journey-1", "task-1", "cat-research", "st-1", true)
	require.NoError(t, err)
	require.NotNil(t, j)
	require.Len(t, buf.journeys, 1)
	assert.Equal(t, "journey-1", buf.journeys[0].ID)
}

func TestUseCaseSaveFailureWithoutBuffer(t *testing.T) {
	repo := newMemoryRepo(seedJourney())
	repo.saveErr = errors.New("redis unavailable")
	uc := New(repo, nil, nil)

	_, err := uc.AddSubtask(context.Background(), "user-1", "journey-1", "task-1", "cat-research", "New step")
	assert.Error(t, err)
}
