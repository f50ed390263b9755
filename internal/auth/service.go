package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Arjunsuryas/Flight-Booking/internal/domain"
	"github.com/Arjunsuryas/Flight-Booking/internal/repository"
)

type SessionStore interface {
	PutSession(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (string, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type SignUpInput struct {
	Email    string
	Password string
	FullName string
	Phone    string
}

type Service struct {
	profiles   repository.ProfileRepository
	sessions   SessionStore
	tokens     *TokenManager
	sessionTTL time.Duration
}

func NewService(profiles repository.ProfileRepository, sessions SessionStore, tokens *TokenManager, sessionTTL time.Duration) *Service {
	return &Service{profiles: profiles, sessions: sessions, tokens: tokens, sessionTTL: sessionTTL}
}

// SignUp creates the profile and opens a session, returning the profile and
// a bearer token.
func (s *Service) SignUp(ctx context.Context, input SignUpInput) (*domain.Profile, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	profile := &domain.Profile{
		ID:       uuid.NewString(),
		FullName: input.FullName,
		Email:    input.Email,
		Phone:    input.Phone,
	}
	if err := s.profiles.Create(ctx, profile, string(hash)); err != nil {
		return nil, "", err
	}

	token, err := s.openSession(ctx, profile.ID)
	if err != nil {
		return nil, "", err
	}
	return profile, token, nil
}

func (s *Service) SignIn(ctx context.Context, email, password string) (string, error) {
	userID, hash, err := s.profiles.GetCredentials(ctx, email)
	if err != nil {
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	return s.openSession(ctx, userID)
}

// SignOut revokes the session; outstanding tokens carrying its id stop
// authenticating immediately.
func (s *Service) SignOut(ctx context.Context, sessionID string) error {
	return s.sessions.DeleteSession(ctx, sessionID)
}

// Authenticate validates a bearer token and checks its session is still
// live, returning the user and session ids.
func (s *Service) Authenticate(ctx context.Context, token string) (string, string, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return "", "", err
	}

	userID, err := s.sessions.GetSession(ctx, claims.SessionID)
	if err != nil {
		return "", "", err
	}
	if userID == "" || userID != claims.Subject {
		return "", "", domain.ErrUnauthenticated
	}
	return userID, claims.SessionID, nil
}

func (s *Service) openSession(ctx context.Context, userID string) (string, error) {
	sessionID := uuid.NewString()
	if err := s.sessions.PutSession(ctx, sessionID, userID, s.sessionTTL); err != nil {
		return "", err
	}
	token, err := s.tokens.Issue(userID, sessionID)
	if err != nil {
		// Best effort: a session without a token is unreachable anyway.
		_ = s.sessions.DeleteSession(ctx, sessionID)
		return "", err
	}
	return token, nil
}

var _ Authenticator = (*Service)(nil)
