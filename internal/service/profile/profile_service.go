package profile

import (
	"context"

	"github.com/Arjunsuryas/Flight-Booking/internal/domain"
	"github.com/Arjunsuryas/Flight-Booking/internal/repository"
)

type ProfileUseCase interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Update(ctx context.Context, userID string, input UpdateInput) (*domain.Profile, error)
}

type UpdateInput struct {
	FullName string
	Phone    string
}

type ProfileService struct {
	repo repository.ProfileRepository
}

func NewProfileService(repo repository.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.repo.GetByID(ctx, userID)
}

// Update changes display fields only. Email never changes after sign-up.
func (s *ProfileService) Update(ctx context.Context, userID string, input UpdateInput) (*domain.Profile, error) {
	return s.repo.Update(ctx, userID, input.FullName, input.Phone)
}

var _ ProfileUseCase = (*ProfileService)(nil)
