package booking

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Arjunsuryas/Flight-Booking/internal/domain"
	"github.com/Arjunsuryas/Flight-Booking/internal/kafka"
	"github.com/Arjunsuryas/Flight-Booking/internal/repository"
)

type BookingUseCase interface {
	Reserve(ctx context.Context, userID string, input ReserveInput) (*domain.Booking, error)
	Cancel(ctx context.Context, userID, bookingID string) error
	ListForUser(ctx context.Context, userID string) ([]domain.Booking, error)
	CompleteDeparted(ctx context.Context) ([]domain.Booking, error)
}

type Cache interface {
	AcquireUserLock(ctx context.Context, userID string, ttl time.Duration) (bool, error)
	ReleaseUserLock(ctx context.Context, userID string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type ReserveInput struct {
	FlightID       string `json:"flight_id" validate:"required,uuid"`
	PassengerName  string `json:"passenger_name" validate:"required"`
	PassengerEmail string `json:"passenger_email" validate:"required,email"`
	PassengerPhone string `json:"passenger_phone" validate:"required"`
}

type BookingService struct {
	bookings           repository.BookingRepository
	cache              Cache
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	opLockTTL          time.Duration
	referenceAttempts  int
	validate           *validator.Validate
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func WithReferenceAttempts(attempts int) BookingServiceOption {
	return func(s *BookingService) {
		if attempts > 0 {
			s.referenceAttempts = attempts
		}
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	cache Cache,
	producer Producer,
	bookingTopic string,
	opLockTTL time.Duration,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:          bookings,
		cache:             cache,
		producer:          producer,
		bookingTopic:      bookingTopic,
		opLockTTL:         opLockTTL,
		referenceAttempts: 5,
		validate:          validator.New(),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Reserve books one seat on a flight. The seat decrement, seat allocation
// and booking insert happen in a single repository transaction; Reserve owns
// the reference retry loop and the per-user double-submit guard.
func (s *BookingService) Reserve(ctx context.Context, userID string, input ReserveInput) (*domain.Booking, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.ErrInvalidPassenger
	}

	release, err := s.lockUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer release()

	for attempt := 0; attempt < s.referenceAttempts; attempt++ {
		booking := &domain.Booking{
			ID:             uuid.NewString(),
			UserID:         userID,
			FlightID:       input.FlightID,
			PassengerName:  input.PassengerName,
			PassengerEmail: input.PassengerEmail,
			PassengerPhone: input.PassengerPhone,
			Reference:      domain.NewReference(),
		}

		err := s.bookings.Create(ctx, booking)
		if errors.Is(err, domain.ErrReferenceTaken) {
			continue
		}
		// A seat collision means another reservation won the same label
		// between our snapshot and insert; re-run against fresh state.
		if errors.Is(err, domain.ErrSeatTaken) {
			continue
		}
		if err != nil {
			return nil, err
		}

		if err := s.publish(ctx, "booking_created", booking); err != nil {
			log.Printf("publish booking_created for %s: %v", booking.Reference, err)
		}
		return booking, nil
	}
	return nil, domain.ErrReferenceExhausted
}

// Cancel flips a confirmed booking owned by the caller to cancelled and
// credits the seat back, exactly once.
func (s *BookingService) Cancel(ctx context.Context, userID, bookingID string) error {
	release, err := s.lockUser(ctx, userID)
	if err != nil {
		return err
	}
	defer release()

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.UserID != userID {
		return domain.ErrNotOwner
	}

	if err := s.bookings.CancelConfirmed(ctx, bookingID); err != nil {
		return err
	}

	booking.Status = domain.BookingStatusCancelled
	if err := s.publish(ctx, "booking_cancelled", booking); err != nil {
		log.Printf("publish booking_cancelled for %s: %v", booking.Reference, err)
	}
	return nil
}

func (s *BookingService) ListForUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

// CompleteDeparted moves confirmed bookings on departed flights to
// completed. Run periodically by the worker, never by client action.
func (s *BookingService) CompleteDeparted(ctx context.Context) ([]domain.Booking, error) {
	completed, err := s.bookings.CompleteDeparted(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	for i := range completed {
		if err := s.publish(ctx, "booking_completed", &completed[i]); err != nil {
			log.Printf("publish booking_completed for %s: %v", completed[i].Reference, err)
		}
	}
	return completed, nil
}

func (s *BookingService) lockUser(ctx context.Context, userID string) (func(), error) {
	if s.cache == nil {
		return func() {}, nil
	}
	ok, err := s.cache.AcquireUserLock(ctx, userID, s.opLockTTL)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrOperationInFlight
	}
	return func() { _ = s.cache.ReleaseUserLock(ctx, userID) }, nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:           eventType,
		BookingID:      booking.ID,
		Reference:      booking.Reference,
		FlightID:       booking.FlightID,
		SeatNumber:     booking.SeatNumber,
		PassengerName:  booking.PassengerName,
		PassengerEmail: booking.PassengerEmail,
		Status:         string(booking.Status),
		CreatedAt:      booking.CreatedAt,
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.Reference, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, booking.Reference, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
