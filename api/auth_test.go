package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Arjunsuryas/Flight-Booking/internal/auth"
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

type memorySessionStore struct {
	sessions map[string]string
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: map[string]string{}}
}

func (s *memorySessionStore) PutSession(_ context.Context, sessionID, userID string, _ time.Duration) error {
	s.sessions[sessionID] = userID
	return nil
}

func (s *memorySessionStore) GetSession(_ context.Context, sessionID string) (string, error) {
	return s.sessions[sessionID], nil
}

func (s *memorySessionStore) DeleteSession(_ context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

func newAuthTestService(profiles *MockProfileRepository) *auth.Service {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return auth.NewService(profiles, newMemorySessionStore(), tokens, time.Hour)
}

func TestAuthHandler_signUp(t *testing.T) {
	mockRepo := &MockProfileRepository{}
	handler := NewAuthHandler(newAuthTestService(mockRepo))

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(signUpRequest{
		Email:    "jordan@example.com",
		Password: "hunter2hunter2",
		FullName: "Jordan Reyes",
	})
	c.Request = httptest.NewRequest("POST", "/auth/signup", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockRepo.On("Create", c.Request.Context(), mock.AnythingOfType("*domain.Profile"), mock.AnythingOfType("string")).Return(nil)

	handler.signUp(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Token   string          `json:"token"`
		Profile profileResponse `json:"profile"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "jordan@example.com", resp.Profile.Email)
	mockRepo.AssertExpectations(t)
}

func TestAuthHandler_signUp_ShortPassword(t *testing.T) {
	mockRepo := &MockProfileRepository{}
	handler := NewAuthHandler(newAuthTestService(mockRepo))

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("POST", "/auth/signup",
		bytes.NewReader([]byte(`{"email":"jordan@example.com","password":"short","full_name":"Jordan Reyes"}`)))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.signUp(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthHandler_signUp_EmailTaken(t *testing.T) {
	mockRepo := &MockProfileRepository{}
	handler := NewAuthHandler(newAuthTestService(mockRepo))

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(signUpRequest{
		Email:    "jordan@example.com",
		Password: "hunter2hunter2",
		FullName: "Jordan Reyes",
	})
	c.Request = httptest.NewRequest("POST", "/auth/signup", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockRepo.On("Create", c.Request.Context(), mock.AnythingOfType("*domain.Profile"), mock.AnythingOfType("string")).
		Return(domain.ErrEmailTaken)

	handler.signUp(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email already registered")
}

func TestAuthHandler_signIn_WrongPassword(t *testing.T) {
	mockRepo := &MockProfileRepository{}
	handler := NewAuthHandler(newAuthTestService(mockRepo))

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("POST", "/auth/signin",
		bytes.NewReader([]byte(`{"email":"jordan@example.com","password":"wrong-password"}`)))
	c.Request.Header.Set("Content-Type", "application/json")

	mockRepo.On("GetCredentials", c.Request.Context(), "jordan@example.com").
		Return("", "", domain.ErrInvalidCredentials)

	handler.signIn(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_signOut(t *testing.T) {
	mockRepo := &MockProfileRepository{}
	handler := NewAuthHandler(newAuthTestService(mockRepo))

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("POST", "/auth/signout", nil)
	c.Set(auth.ContextSessionID, "session-1")

	handler.signOut(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "signed out")
}
