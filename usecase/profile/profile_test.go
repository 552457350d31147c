package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venturewayfinder/backend/domain"
	"github.com/venturewayfinder/backend/usecase"
)

type memoryProfiles struct {
	byUser  map[string]*domain.BusinessProfile
	saveErr error
}

func (m *memoryProfiles) GetByUser(_ context.Context, userID string) (*domain.BusinessProfile, error) {
	p, ok := m.byUser[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p, nil
}

func (m *memoryProfiles) Save(_ context.Context, p *domain.BusinessProfile) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if m.byUser == nil {
		m.byUser = make(map[string]*domain.BusinessProfile)
	}
	m.byUser[p.UserID] = p
	return nil
}

type memoryUsers struct {
	byID      map[string]*domain.User
	upsertErr error
}

func (m *memoryUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (m *memoryUsers) Upsert(_ context.Context, u *domain.User) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	if m.byID == nil {
		m.byID = make(map[string]*domain.User)
	}
	m.byID[u.ID] = u
	return nil
}

type recordingBuffer struct {
	users    int
	profiles int
}

func (b *recordingBuffer) BufferUser(context.Context, string, *domain.User) error {
	b.users++
	return nil
}

func (b *recordingBuffer) BufferJourney(context.Context, string, *domain.Journey) error {
	return nil
}

func (b *recordingBuffer) BufferBusinessProfile(context.Context, string, *domain.BusinessProfile) error {
	b.profiles++
	return nil
}

var _ usecase.OperationBuffer = (*recordingBuffer)(nil)

func TestSaveBusinessProfileAssignsIDAndBumpsVersion(t *testing.T) {
	repo := &memoryProfiles{}
	uc := New(&memoryUsers{}, repo, nil, nil)

	saved, err := uc.SaveBusinessProfile(context.Background(), &domain.BusinessProfile{
		UserID:   "user-1",
		Solution: "meal kit delivery",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, 1, saved.Version)
	assert.False(t, saved.UpdatedAt.IsZero())

	again, err := uc.SaveBusinessProfile(context.Background(), saved)
	require.NoError(t, err)
	assert.Equal(t, 2, again.Version)
}

func TestSaveBusinessProfileRejectsMissingUser(t *testing.T) {
	uc := New(&memoryUsers{}, &memoryProfiles{}, nil, nil)

	_, err := uc.SaveBusinessProfile(context.Background(), &domain.BusinessProfile{})
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestSaveBusinessProfileBuffersOnRepositoryError(t *testing.T) {
	buf := &recordingBuffer{}
	repo := &memoryProfiles{saveErr: errors.New("pg down")}
	uc := New(&memoryUsers{}, repo, buf, nil)

	saved, err := uc.SaveBusinessProfile(context.Background(), &domain.BusinessProfile{UserID: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, 1, buf.profiles)
	assert.Equal(t, 1, saved.Version)
}

func TestUpdateUserBuffersOnRepositoryError(t *testing.T) {
	buf := &recordingBuffer{}
	users := &memoryUsers{upsertErr: errors.New("pg down")}
	uc := New(users, &memoryProfiles{}, buf, nil)

	u, err := uc.UpdateUser(context.Background(), &domain.User{ID: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, "user-1", u.ID)
	assert.Equal(t, 1, buf.users)
}

func TestUpdateUserFailsWithoutBuffer(t *testing.T) {
	users := &memoryUsers{upsertErr: errors.New("pg down")}
	uc := New(users, &memoryProfiles{}, nil, nil)

	_, err := uc.UpdateUser(context.Background(), &domain.User{ID: "user-1"})
	assert.Error(t, err)
}

func TestImportLegacyProfile(t *testing.T) {
	uc := New(&memoryUsers{}, &memoryProfiles{}, nil, nil)

	payload := []byte(`{"businessIdea":"tutoring app","audience":"parents"}`)
	saved, err := uc.ImportLegacyProfile(context.Background(), "user-1", payload)
	require.NoError(t, err)
	assert.Equal(t, "user-1", saved.UserID)
	assert.Equal(t, "tutoring app", saved.Solution)
	assert.Equal(t, "parents", saved.TargetMarket)

	got, err := uc.GetBusinessProfile(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
}
