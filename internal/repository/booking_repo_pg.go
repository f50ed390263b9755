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

type BookingRepository interface {
	// Create reserves a seat and inserts the booking in one transaction.
	// The booking arrives with id, user, flight, passenger details and a
	// candidate reference; seat number, price and timestamps are filled in.
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	// CancelConfirmed flips a confirmed booking to cancelled and credits the
	// seat back to the flight, both in one transaction.
	CancelConfirmed(ctx context.Context, id string) error
	CompleteDeparted(ctx context.Context, departedBefore time.Time) ([]domain.Booking, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return unavailable("begin reservation", err)
	}
	defer tx.Rollback(ctx)

	// The conditional decrement is the oversell guard and, as the first
	// write on the flight row, serializes concurrent reservations on the
	// same flight for the rest of the transaction.
	var (
		priceCents int64
		totalSeats int
	)
	err = tx.QueryRow(ctx, `UPDATE flights SET available_seats = available_seats - 1, updated_at = now()
		WHERE id=$1 AND available_seats > 0
		RETURNING price_cents, total_seats`, booking.FlightID).
		Scan(&priceCents, &totalSeats)
	if errors.Is(err, pgx.ErrNoRows) {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM flights WHERE id=$1)`, booking.FlightID).Scan(&exists); err != nil {
			return unavailable("check flight", err)
		}
		if !exists {
			return domain.ErrFlightNotFound
		}
		return domain.ErrFlightSoldOut
	}
	if err != nil {
		return unavailable("reserve seat", err)
	}

	taken, err := takenSeats(ctx, tx, booking.FlightID)
	if err != nil {
		return err
	}
	seat, err := domain.AllocateSeat(totalSeats, taken)
	if err != nil {
		return err
	}

	booking.SeatNumber = seat
	booking.TotalPriceCents = priceCents
	booking.Status = domain.BookingStatusConfirmed

	err = tx.QueryRow(ctx, `INSERT INTO bookings (id, user_id, flight_id, passenger_name, passenger_email, passenger_phone, seat_number, booking_reference, total_price_cents, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`,
		booking.ID, booking.UserID, booking.FlightID, booking.PassengerName,
		booking.PassengerEmail, booking.PassengerPhone, booking.SeatNumber,
		booking.Reference, booking.TotalPriceCents, booking.Status).
		Scan(&booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "bookings_reference_key") {
			return domain.ErrReferenceTaken
		}
		if isUniqueViolation(err, "bookings_flight_seat_active_key") {
			return domain.ErrSeatTaken
		}
		return unavailable("insert booking", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return unavailable("commit reservation", err)
	}
	return nil
}

func takenSeats(ctx context.Context, tx pgx.Tx, flightID string) ([]string, error) {
	rows, err := tx.Query(ctx, `SELECT seat_number FROM bookings WHERE flight_id=$1 AND status <> 'cancelled'`, flightID)
	if err != nil {
		return nil, unavailable("list taken seats", err)
	}
	defer rows.Close()

	var taken []string
	for rows.Next() {
		var seat string
		if err := rows.Scan(&seat); err != nil {
			return nil, unavailable("scan taken seat", err)
		}
		taken = append(taken, seat)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("list taken seats", err)
	}
	return taken, nil
}

var bookingColumns = []string{
	"id", "user_id", "flight_id", "passenger_name", "passenger_email",
	"passenger_phone", "seat_number", "booking_reference",
	"total_price_cents", "status", "created_at", "updated_at",
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	sqlStr, args, err := psql.Select(bookingColumns...).From("bookings").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	var b domain.Booking
	err = r.db.QueryRow(ctx, sqlStr, args...).Scan(
		&b.ID, &b.UserID, &b.FlightID, &b.PassengerName, &b.PassengerEmail,
		&b.PassengerPhone, &b.SeatNumber, &b.Reference, &b.TotalPriceCents,
		&b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrBookingNotFound
	}
	if err != nil {
		return nil, unavailable("get booking", err)
	}
	return &b, nil
}

func (r *PGBookingRepository) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	builder := psql.Select(
		"b.id", "b.user_id", "b.flight_id", "b.passenger_name", "b.passenger_email",
		"b.passenger_phone", "b.seat_number", "b.booking_reference",
		"b.total_price_cents", "b.status", "b.created_at", "b.updated_at",
		"f.flight_number", "f.airline", "f.origin", "f.destination",
		"f.departure_time", "f.arrival_time",
	).
		From("bookings b").
		Join("flights f ON f.id = b.flight_id").
		Where(sq.Eq{"b.user_id": userID}).
		OrderBy("b.created_at DESC")

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, unavailable("list bookings", err)
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var (
			b domain.Booking
			f domain.FlightSummary
		)
		err := rows.Scan(
			&b.ID, &b.UserID, &b.FlightID, &b.PassengerName, &b.PassengerEmail,
			&b.PassengerPhone, &b.SeatNumber, &b.Reference, &b.TotalPriceCents,
			&b.Status, &b.CreatedAt, &b.UpdatedAt,
			&f.FlightNumber, &f.Airline, &f.Origin, &f.Destination,
			&f.DepartureTime, &f.ArrivalTime,
		)
		if err != nil {
			return nil, unavailable("scan booking", err)
		}
		b.Flight = &f
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("list bookings", err)
	}
	return bookings, nil
}

func (r *PGBookingRepository) CancelConfirmed(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return unavailable("begin cancellation", err)
	}
	defer tx.Rollback(ctx)

	// Conditional transition: only a confirmed booking flips, so a second
	// cancel affects zero rows and never credits the seat twice.
	var flightID string
	err = tx.QueryRow(ctx, `UPDATE bookings SET status=$1, updated_at=now()
		WHERE id=$2 AND status=$3
		RETURNING flight_id`, domain.BookingStatusCancelled, id, domain.BookingStatusConfirmed).
		Scan(&flightID)
	if errors.Is(err, pgx.ErrNoRows) {
		var status domain.BookingStatus
		err := tx.QueryRow(ctx, `SELECT status FROM bookings WHERE id=$1`, id).Scan(&status)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		if err != nil {
			return unavailable("check booking", err)
		}
		if status == domain.BookingStatusCancelled {
			return domain.ErrAlreadyCancelled
		}
		return domain.ErrNotCancellable
	}
	if err != nil {
		return unavailable("cancel booking", err)
	}

	cmd, err := tx.Exec(ctx, `UPDATE flights SET available_seats = available_seats + 1, updated_at = now()
		WHERE id=$1 AND available_seats < total_seats`, flightID)
	if err != nil {
		return unavailable("release seat", err)
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("seat credit would exceed total seats")
	}

	if err := tx.Commit(ctx); err != nil {
		return unavailable("commit cancellation", err)
	}
	return nil
}

func (r *PGBookingRepository) CompleteDeparted(ctx context.Context, departedBefore time.Time) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `UPDATE bookings b SET status=$1, updated_at=now()
		FROM flights f
		WHERE b.flight_id = f.id AND b.status=$2 AND f.departure_time <= $3
		RETURNING b.id, b.user_id, b.flight_id, b.passenger_name, b.passenger_email, b.passenger_phone, b.seat_number, b.booking_reference, b.total_price_cents, b.status, b.created_at, b.updated_at`,
		domain.BookingStatusCompleted, domain.BookingStatusConfirmed, departedBefore)
	if err != nil {
		return nil, unavailable("complete departed bookings", err)
	}
	defer rows.Close()

	var completed []domain.Booking
	for rows.Next() {
		var b domain.Booking
		err := rows.Scan(
			&b.ID, &b.UserID, &b.FlightID, &b.PassengerName, &b.PassengerEmail,
			&b.PassengerPhone, &b.SeatNumber, &b.Reference, &b.TotalPriceCents,
			&b.Status, &b.CreatedAt, &b.UpdatedAt,
		)
		if err != nil {
			return nil, unavailable("scan completed booking", err)
		}
		completed = append(completed, b)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("complete departed bookings", err)
	}
	return completed, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
