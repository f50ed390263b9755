package domain

import "errors"

var (
	ErrFlightNotFound     = errors.New("flight not found")
	ErrFlightSoldOut      = errors.New("no available seats")
	ErrInvalidPassenger   = errors.New("invalid passenger details")
	ErrReferenceTaken     = errors.New("booking reference already taken")
	ErrReferenceExhausted = errors.New("booking reference generation exhausted")
	ErrSeatTaken          = errors.New("seat already taken")

	ErrBookingNotFound  = errors.New("booking not found")
	ErrNotOwner         = errors.New("booking belongs to another user")
	ErrAlreadyCancelled = errors.New("booking already cancelled")
	ErrNotCancellable   = errors.New("booking can no longer be cancelled")

	ErrProfileNotFound    = errors.New("profile not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("not authenticated")

	ErrOperationInFlight  = errors.New("another booking operation is in progress")
	ErrBackendUnavailable = errors.New("backend unavailable")
)
