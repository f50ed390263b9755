package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Arjunsuryas/Flight-Booking/internal/domain"
)

type FlightRepository interface {
	ListUpcoming(ctx context.Context, since time.Time, query string) ([]domain.Flight, error)
	GetByID(ctx context.Context, id string) (*domain.Flight, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

var flightColumns = []string{
	"id", "flight_number", "airline", "origin", "destination",
	"departure_time", "arrival_time", "price_cents", "total_seats",
	"available_seats", "aircraft_type", "created_at", "updated_at",
}

func (r *PGFlightRepository) ListUpcoming(ctx context.Context, since time.Time, query string) ([]domain.Flight, error) {
	builder := psql.Select(flightColumns...).
		From("flights").
		Where(sq.GtOrEq{"departure_time": since}).
		OrderBy("departure_time ASC")

	if query != "" {
		pattern := "%" + query + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"origin": pattern},
			sq.ILike{"destination": pattern},
			sq.ILike{"airline": pattern},
			sq.ILike{"flight_number": pattern},
		})
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, unavailable("list flights", err)
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := scanFlight(rows, &f); err != nil {
			return nil, unavailable("scan flight", err)
		}
		flights = append(flights, f)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("list flights", err)
	}
	return flights, nil
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	sqlStr, args, err := psql.Select(flightColumns...).From("flights").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	var f domain.Flight
	if err := scanFlight(r.db.QueryRow(ctx, sqlStr, args...), &f); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFlightNotFound
		}
		return nil, unavailable("get flight", err)
	}
	return &f, nil
}

func scanFlight(row pgx.Row, f *domain.Flight) error {
	return row.Scan(
		&f.ID, &f.FlightNumber, &f.Airline, &f.Origin, &f.Destination,
		&f.DepartureTime, &f.ArrivalTime, &f.PriceCents, &f.TotalSeats,
		&f.AvailableSeats, &f.AircraftType, &f.CreatedAt, &f.UpdatedAt,
	)
}

var _ FlightRepository = (*PGFlightRepository)(nil)
