package repository

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Domenick1991/seatbooking/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPGRepositories(t *testing.T) {
	pool := &pgxpool.Pool{}
	assert.NotNil(t, NewBookingRepository(pool))
	assert.NotNil(t, NewFlightRepository(pool))
	assert.Contains(t, schemaSQL, "CREATE TABLE IF NOT EXISTS bookings")
}

func TestPGBookingRepository_MalformedIDIsNotFound(t *testing.T) {
	// The guard answers before any query, so a zero pool is enough.
	repo := NewBookingRepository(&pgxpool.Pool{})
	ctx := context.Background()

	for _, id := range []string{"nope", "", "123", "b1e0c7a4-zzzz-4f0e-9b7a-1d2c3e4f5a6b"} {
		_, err := repo.GetByID(ctx, id)
		assert.True(t, domain.IsNotFound(err), "get %q: %v", id, err)
		assert.NotErrorIs(t, err, domain.ErrStoreUnavailable)

		_, err = repo.UpdateStatus(ctx, id, domain.BookingStatusCancelled)
		assert.True(t, domain.IsNotFound(err), "update %q: %v", id, err)
	}
}

func newStore() *MemoryStore {
	return NewMemoryStore(
		domain.Flight{ID: 1, FlightNumber: "LA100", TotalSeats: 10, DepartureTime: time.Date(2026, 11, 2, 8, 0, 0, 0, time.UTC)},
		domain.Flight{ID: 2, FlightNumber: "LA200", TotalSeats: 10, DepartureTime: time.Date(2026, 11, 1, 8, 0, 0, 0, time.UTC)},
	)
}

func booking(id string, flightID int64, seats ...string) *domain.Booking {
	return &domain.Booking{ID: id, UserID: "u1", FlightID: flightID, Seats: seats, Class: domain.SeatClassEconomy}
}

func TestMemoryStore_Flights(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	flights, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, flights, 2)
	assert.Equal(t, int64(2), flights[0].ID)

	_, err = store.GetByID(ctx, 42)
	assert.True(t, domain.IsNotFound(err))
}

func TestMemoryStore_CreateConfirmed(t *testing.T) {
	store := newStore()
	repo := store.Bookings()
	ctx := context.Background()

	first := booking("b1", 1, "E1", "E2")
	require.NoError(t, repo.CreateConfirmed(ctx, first))
	assert.Equal(t, domain.BookingStatusConfirmed, first.Status)
	assert.False(t, first.CreatedAt.IsZero())

	err := repo.CreateConfirmed(ctx, booking("b2", 1, "E3", "E2"))
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"E2"}, conflict.Seats)

	_, err = repo.GetByID(ctx, "b2")
	assert.True(t, domain.IsNotFound(err), "no partial booking on conflict")

	// same seat on another flight is independent
	require.NoError(t, repo.CreateConfirmed(ctx, booking("b3", 2, "E2")))

	err = repo.CreateConfirmed(ctx, booking("b4", 99, "E1"))
	assert.True(t, domain.IsNotFound(err))
}

func TestMemoryStore_CancelledSeatsAreFree(t *testing.T) {
	store := newStore()
	repo := store.Bookings()
	ctx := context.Background()

	require.NoError(t, repo.CreateConfirmed(ctx, booking("b1", 1, "E1")))
	cancelled, err := repo.UpdateStatus(ctx, "b1", domain.BookingStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, cancelled.Status)

	require.NoError(t, repo.CreateConfirmed(ctx, booking("b2", 1, "E1")))

	confirmed, err := repo.ListByFlight(ctx, 1, domain.BookingStatusConfirmed)
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	assert.Equal(t, "b2", confirmed[0].ID)

	old, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, old.Status)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	store := newStore()
	repo := store.Bookings()
	ctx := context.Background()

	b := booking("b1", 1, "E1")
	require.NoError(t, repo.CreateConfirmed(ctx, b))
	b.Seats[0] = "E5"

	got, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, []string{"E1"}, got.Seats)
}

func TestMemoryStore_ListByUser(t *testing.T) {
	store := newStore()
	tick := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}
	repo := store.Bookings()
	ctx := context.Background()

	require.NoError(t, repo.CreateConfirmed(ctx, booking("b1", 1, "E1")))
	require.NoError(t, repo.CreateConfirmed(ctx, booking("b2", 2, "E1")))
	other := booking("b3", 1, "E2")
	other.UserID = "u2"
	require.NoError(t, repo.CreateConfirmed(ctx, other))

	list, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b2", list[0].ID, "newest first")

	all, err := repo.ListByStatus(ctx, domain.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMemoryStore_ConcurrentSameSeat(t *testing.T) {
	store := newStore()
	repo := store.Bookings()
	ctx := context.Background()

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		conflicts atomic.Int32
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := repo.CreateConfirmed(ctx, booking(fmt.Sprintf("b%d", i), 1, "E7"))
			switch {
			case err == nil:
				succeeded.Add(1)
			case domain.IsConflict(err):
				conflicts.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(49), conflicts.Load())
}
