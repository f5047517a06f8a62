package repository

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/Domenick1991/seatbooking/internal/domain"
)

// MemoryStore keeps flights and bookings in process. Each flight has its own mutex, so
// conditional inserts for different flights never wait on each other.
type MemoryStore struct {
	mu       sync.RWMutex
	flights  map[int64]*domain.Flight
	bookings map[string]*domain.Booking
	shards   map[int64]*sync.Mutex
	now      func() time.Time
}

func NewMemoryStore(flights ...domain.Flight) *MemoryStore {
	s := &MemoryStore{
		flights:  make(map[int64]*domain.Flight),
		bookings: make(map[string]*domain.Booking),
		shards:   make(map[int64]*sync.Mutex),
		now:      time.Now,
	}
	for _, f := range flights {
		s.PutFlight(f)
	}
	return s
}

// PutFlight inserts or replaces a flight record.
func (s *MemoryStore) PutFlight(f domain.Flight) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flights[f.ID] = &f
	if _, ok := s.shards[f.ID]; !ok {
		s.shards[f.ID] = &sync.Mutex{}
	}
}

func (s *MemoryStore) List(_ context.Context) ([]domain.Flight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	flights := make([]domain.Flight, 0, len(s.flights))
	for _, f := range s.flights {
		flights = append(flights, *f)
	}
	sort.Slice(flights, func(i, j int) bool {
		if flights[i].DepartureTime.Equal(flights[j].DepartureTime) {
			return flights[i].ID < flights[j].ID
		}
		return flights[i].DepartureTime.Before(flights[j].DepartureTime)
	})
	return flights, nil
}

func (s *MemoryStore) GetByID(_ context.Context, id int64) (*domain.Flight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.flights[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "flight", ID: strconv.FormatInt(id, 10)}
	}
	c := *f
	return &c, nil
}

// Bookings exposes the booking side of the store.
func (s *MemoryStore) Bookings() BookingRepository {
	return memoryBookings{s}
}

type memoryBookings struct {
	s *MemoryStore
}

func (m memoryBookings) CreateConfirmed(_ context.Context, b *domain.Booking) error {
	s := m.s
	s.mu.RLock()
	shard, ok := s.shards[b.FlightID]
	s.mu.RUnlock()
	if !ok {
		return &domain.NotFoundError{Entity: "flight", ID: strconv.FormatInt(b.FlightID, 10)}
	}

	shard.Lock()
	defer shard.Unlock()

	taken := domain.NewSeatSet()
	s.mu.RLock()
	for _, existing := range s.bookings {
		if existing.FlightID == b.FlightID && existing.HoldsSeats() {
			for _, seat := range existing.Seats {
				taken[seat] = struct{}{}
			}
		}
	}
	s.mu.RUnlock()
	if conflict := taken.Overlap(b.Seats); len(conflict) > 0 {
		return &domain.ConflictError{Seats: conflict}
	}

	now := s.now()
	b.Status = domain.BookingStatusConfirmed
	b.CreatedAt, b.UpdatedAt = now, now

	s.mu.Lock()
	s.bookings[b.ID] = b.Clone()
	s.mu.Unlock()
	return nil
}

func (m memoryBookings) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	b, ok := m.s.bookings[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "booking", ID: id}
	}
	return b.Clone(), nil
}

func (m memoryBookings) ListByFlight(_ context.Context, flightID int64, status domain.BookingStatus) ([]domain.Booking, error) {
	return m.filter(func(b *domain.Booking) bool { return b.FlightID == flightID && b.Status == status }), nil
}

func (m memoryBookings) ListByUser(_ context.Context, userID string) ([]domain.Booking, error) {
	out := m.filter(func(b *domain.Booking) bool { return b.UserID == userID })
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (m memoryBookings) ListByStatus(_ context.Context, status domain.BookingStatus) ([]domain.Booking, error) {
	return m.filter(func(b *domain.Booking) bool { return b.Status == status }), nil
}

func (m memoryBookings) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	b, ok := m.s.bookings[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "booking", ID: id}
	}
	b.Status = status
	b.UpdatedAt = m.s.now()
	return b.Clone(), nil
}

// filter returns matching bookings oldest first.
func (m memoryBookings) filter(keep func(*domain.Booking) bool) []domain.Booking {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	out := make([]domain.Booking, 0)
	for _, b := range m.s.bookings {
		if keep(b) {
			out = append(out, *b.Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

var (
	_ FlightRepository  = (*MemoryStore)(nil)
	_ BookingRepository = memoryBookings{}
)
