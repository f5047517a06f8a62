package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/Domenick1991/seatbooking/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	// CreateConfirmed inserts b as confirmed only if none of its seats is held by another
	// confirmed booking on the same flight. The check and the insert are one atomic step.
	CreateConfirmed(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByFlight(ctx context.Context, flightID int64, status domain.BookingStatus) ([]domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	ListByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, user_id, flight_id, seats, class, passengers, status, created_at, updated_at`

func (r *PGBookingRepository) CreateConfirmed(ctx context.Context, b *domain.Booking) error {
	passengers, err := json.Marshal(b.Passengers)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return domain.WrapStore("begin reservation", err)
	}
	defer tx.Rollback(ctx)

	// The flight row lock serializes commits for one flight; other flights are unaffected.
	var flightID int64
	if err := tx.QueryRow(ctx, `SELECT id FROM flights WHERE id=$1 FOR UPDATE`, b.FlightID).Scan(&flightID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.NotFoundError{Entity: "flight", ID: strconv.FormatInt(b.FlightID, 10)}
		}
		return domain.WrapStore("lock flight", err)
	}

	rows, err := tx.Query(ctx, `SELECT DISTINCT seat FROM bookings, unnest(seats) AS seat
		WHERE flight_id=$1 AND status=$2 AND seat = ANY($3)`, b.FlightID, domain.BookingStatusConfirmed, b.Seats)
	if err != nil {
		return domain.WrapStore("check occupancy", err)
	}
	taken, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return domain.WrapStore("check occupancy", err)
	}
	if conflict := domain.NewSeatSet(taken...).Overlap(b.Seats); len(conflict) > 0 {
		return &domain.ConflictError{Seats: conflict}
	}

	b.Status = domain.BookingStatusConfirmed
	if err := tx.QueryRow(ctx, `INSERT INTO bookings (id, user_id, flight_id, seats, class, passengers, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`, b.ID, b.UserID, b.FlightID, b.Seats, b.Class, passengers, b.Status).
		Scan(&b.CreatedAt, &b.UpdatedAt); err != nil {
		return domain.WrapStore("insert booking", err)
	}

	return domain.WrapStore("commit reservation", tx.Commit(ctx))
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if !validBookingID(id) {
		return nil, &domain.NotFoundError{Entity: "booking", ID: id}
	}
	b, err := scanBooking(r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "booking", ID: id}
		}
		return nil, domain.WrapStore("get booking", err)
	}
	return b, nil
}

func (r *PGBookingRepository) ListByFlight(ctx context.Context, flightID int64, status domain.BookingStatus) ([]domain.Booking, error) {
	return r.list(ctx, "list flight bookings",
		`SELECT `+bookingColumns+` FROM bookings WHERE flight_id=$1 AND status=$2 ORDER BY created_at`, flightID, status)
}

func (r *PGBookingRepository) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	return r.list(ctx, "list user bookings",
		`SELECT `+bookingColumns+` FROM bookings WHERE user_id=$1 ORDER BY created_at DESC`, userID)
}

func (r *PGBookingRepository) ListByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error) {
	return r.list(ctx, "list bookings",
		`SELECT `+bookingColumns+` FROM bookings WHERE status=$1 ORDER BY flight_id, created_at`, status)
}

func (r *PGBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	if !validBookingID(id) {
		return nil, &domain.NotFoundError{Entity: "booking", ID: id}
	}
	b, err := scanBooking(r.db.QueryRow(ctx, `UPDATE bookings SET status=$1, updated_at=now() WHERE id=$2 RETURNING `+bookingColumns, status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "booking", ID: id}
		}
		return nil, domain.WrapStore("update booking status", err)
	}
	return b, nil
}

func (r *PGBookingRepository) list(ctx context.Context, op, query string, args ...any) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.WrapStore(op, err)
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, domain.WrapStore(op, err)
		}
		bookings = append(bookings, *b)
	}
	return bookings, domain.WrapStore(op, rows.Err())
}

// validBookingID reports whether id can be a bookings primary key at all.
func validBookingID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var (
		b          domain.Booking
		passengers []byte
	)
	if err := row.Scan(&b.ID, &b.UserID, &b.FlightID, &b.Seats, &b.Class, &passengers, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	if len(passengers) > 0 {
		if err := json.Unmarshal(passengers, &b.Passengers); err != nil {
			return nil, err
		}
	}
	return &b, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
