package flights

import (
	"context"
	"time"

	"github.com/Arjunsuryas/Flight-Booking/internal/domain"
	"github.com/Arjunsuryas/Flight-Booking/internal/repository"
)

type FlightUseCase interface {
	List(ctx context.Context, query string) ([]domain.Flight, error)
	GetByID(ctx context.Context, id string) (*domain.Flight, error)
}

type Cache interface {
	GetUpcomingFlights(ctx context.Context) ([]domain.Flight, error)
	SetUpcomingFlights(ctx context.Context, flights []domain.Flight) error
}

type FlightService struct {
	repo  repository.FlightRepository
	cache Cache
}

func NewFlightService(repo repository.FlightRepository, cache Cache) *FlightService {
	return &FlightService{repo: repo, cache: cache}
}

// List returns upcoming flights ordered by departure time. An optional
// free-text query matches origin, destination, airline or flight number.
// Only the unfiltered list is cached.
func (s *FlightService) List(ctx context.Context, query string) ([]domain.Flight, error) {
	if query == "" && s.cache != nil {
		if cached, err := s.cache.GetUpcomingFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.ListUpcoming(ctx, time.Now(), query)
	if err != nil {
		return nil, err
	}
	if query == "" && s.cache != nil {
		_ = s.cache.SetUpcomingFlights(ctx, flights)
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

var _ FlightUseCase = (*FlightService)(nil)
