package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

type Booking struct {
	ID              string
	UserID          string
	FlightID        string
	PassengerName   string
	PassengerEmail  string
	PassengerPhone  string
	SeatNumber      string
	Reference       string
	TotalPriceCents int64
	Status          BookingStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Flight is filled by list queries that join the flights table.
	Flight *FlightSummary
}

type FlightSummary struct {
	FlightNumber  string
	Airline       string
	Origin        string
	Destination   string
	DepartureTime time.Time
	ArrivalTime   time.Time
}
