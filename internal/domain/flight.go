package domain

import "time"

type Flight struct {
	ID             string
	FlightNumber   string
	Airline        string
	Origin         string
	Destination    string
	DepartureTime  time.Time
	ArrivalTime    time.Time
	PriceCents     int64
	TotalSeats     int
	AvailableSeats int
	AircraftType   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
