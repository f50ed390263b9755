package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Arjunsuryas/Flight-Booking/internal/domain"
)

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *domain.Profile, passwordHash string) error {
	args := m.Called(ctx, profile, passwordHash)
	return args.Error(0)
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetCredentials(ctx context.Context, email string) (string, string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockProfileRepository) Update(ctx context.Context, id, fullName, phone string) (*domain.Profile, error) {
	args := m.Called(ctx, id, fullName, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func TestProfileService_Get(t *testing.T) {
	mockRepo := &MockProfileRepository{}
	service := NewProfileService(mockRepo)

	ctx := context.Background()
	profile := &domain.Profile{ID: "user-1", FullName: "Jordan Reyes", Email: "jordan@example.com"}
	mockRepo.On("GetByID", ctx, "user-1").Return(profile, nil).Once()

	result, err := service.Get(ctx, "user-1")

	assert.NoError(t, err)
	assert.Equal(t, profile, result)
}

func TestProfileService_Update(t *testing.T) {
	mockRepo := &MockProfileRepository{}
	service := NewProfileService(mockRepo)

	ctx := context.Background()
	updated := &domain.Profile{ID: "user-1", FullName: "Jordan A. Reyes", Email: "jordan@example.com", Phone: "+15550100"}
	mockRepo.On("Update", ctx, "user-1", "Jordan A. Reyes", "+15550100").Return(updated, nil).Once()

	result, err := service.Update(ctx, "user-1", UpdateInput{FullName: "Jordan A. Reyes", Phone: "+15550100"})

	assert.NoError(t, err)
	assert.Equal(t, updated, result)
	mockRepo.AssertExpectations(t)
}

func TestProfileService_Get_NotFound(t *testing.T) {
	mockRepo := &MockProfileRepository{}
	service := NewProfileService(mockRepo)

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, "missing").Return(nil, domain.ErrProfileNotFound).Once()

	_, err := service.Get(ctx, "missing")

	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}
