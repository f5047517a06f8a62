package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/seatbooking/internal/domain"
	"github.com/Domenick1991/seatbooking/internal/kafka"
	"github.com/Domenick1991/seatbooking/internal/lock"
	"github.com/Domenick1991/seatbooking/internal/pkg/logger"
	"github.com/Domenick1991/seatbooking/internal/pkg/metrics"
	"github.com/Domenick1991/seatbooking/internal/repository"
	"github.com/Domenick1991/seatbooking/internal/seatmap"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingUseCase interface {
	OccupiedSeats(ctx context.Context, flightID int64) ([]string, error)
	ValidateSeats(ctx context.Context, input ValidateSeatsInput) error
	Reserve(ctx context.Context, input ReserveInput) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID string) (*domain.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error)
	ListUserBookings(ctx context.Context, userID string) ([]domain.Booking, error)
	SeatMap(ctx context.Context, flightID int64, selected []string) (*SeatMapView, error)
	SearchFlights(ctx context.Context, query SearchQuery) ([]FlightAvailability, error)
}

// FlightSource resolves flight records; usually the cached flight service.
type FlightSource interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
}

// FlightLocker opens a mutual exclusion scope for one flight. The returned func releases it.
type FlightLocker interface {
	Lock(ctx context.Context, flightID int64) (func(), error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value any) error
}

type BookingService struct {
	bookings    repository.BookingRepository
	flights     FlightSource
	locker      FlightLocker
	lockBackend string
	producer    Producer
	eventsTopic string
	layout      seatmap.Layout
	metrics     *metrics.Metrics
	validate    *validator.Validate
	newID       func() string
	now         func() time.Time
}

type ReserveInput struct {
	FlightID   int64              `json:"flight_id"`
	Seats      []string           `json:"seats"`
	Passengers []domain.Passenger `json:"passengers"`
	Class      domain.SeatClass   `json:"class"`
	UserID     string             `json:"user_id"`
}

type ValidateSeatsInput struct {
	FlightID      int64            `json:"flight_id"`
	Seats         []string         `json:"seats"`
	Class         domain.SeatClass `json:"class"`
	ExpectedCount int              `json:"expected_count"`
}

type BookingServiceOption func(*BookingService)

// WithLocker replaces the in-process per-flight lock, e.g. with the Redis lock.
func WithLocker(locker FlightLocker, backend string) BookingServiceOption {
	return func(s *BookingService) {
		s.locker = locker
		s.lockBackend = backend
	}
}

func WithEvents(producer Producer, topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.eventsTopic = topic
	}
}

func WithLayout(layout seatmap.Layout) BookingServiceOption {
	return func(s *BookingService) {
		s.layout = layout
	}
}

func WithMetrics(m *metrics.Metrics) BookingServiceOption {
	return func(s *BookingService) {
		s.metrics = m
	}
}

func NewBookingService(bookings repository.BookingRepository, flights FlightSource, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		bookings:    bookings,
		flights:     flights,
		locker:      lock.NewKeyed(),
		lockBackend: "memory",
		layout:      seatmap.DefaultLayout(),
		validate:    newValidator(),
		newID:       uuid.NewString,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Reserve validates the request and commits a confirmed booking. Occupancy is re-read inside
// the flight's critical section and the store insert is itself conditional, so two callers
// holding the same stale snapshot cannot both win a seat. Conflicts are not retried.
func (s *BookingService) Reserve(ctx context.Context, input ReserveInput) (*domain.Booking, error) {
	b, err := s.reserve(ctx, input)
	s.countReservation(err)
	return b, err
}

func (s *BookingService) reserve(ctx context.Context, input ReserveInput) (*domain.Booking, error) {
	input.Passengers = trimPassengers(input.Passengers)
	if err := s.checkRequest(input); err != nil {
		return nil, err
	}

	flight, err := s.flights.GetByID(ctx, input.FlightID)
	if err != nil {
		return nil, err
	}
	sm := seatmap.ForFlight(flight, s.layout)
	if err := checkSeats(sm, input.Seats, input.Class); err != nil {
		return nil, err
	}

	// Early rejection only; the authoritative check happens under the lock.
	if err := s.checkFree(ctx, input.FlightID, input.Seats); err != nil {
		return nil, err
	}

	started := time.Now()
	unlock, err := s.locker.Lock(ctx, input.FlightID)
	if s.metrics != nil {
		s.metrics.LockWaitDuration.WithLabelValues(s.lockBackend).Observe(time.Since(started).Seconds())
	}
	if err != nil {
		return nil, fmt.Errorf("lock flight %d: %w", input.FlightID, err)
	}
	defer unlock()

	if err := s.checkFree(ctx, input.FlightID, input.Seats); err != nil {
		return nil, err
	}

	b := &domain.Booking{
		ID:         s.newID(),
		UserID:     input.UserID,
		FlightID:   input.FlightID,
		Seats:      append([]string(nil), input.Seats...),
		Class:      input.Class,
		Passengers: input.Passengers,
	}
	if err := s.bookings.CreateConfirmed(ctx, b); err != nil {
		return nil, err
	}

	logger.Info("booking reserved",
		zap.String("booking_id", b.ID),
		zap.Int64("flight_id", b.FlightID),
		zap.Strings("seats", b.Seats),
		zap.String("user_id", b.UserID),
	)
	s.publish(ctx, kafka.EventBookingReserved, b)
	return b, nil
}

func (s *BookingService) checkFree(ctx context.Context, flightID int64, seats []string) error {
	occupied, err := s.occupancy(ctx, flightID)
	if err != nil {
		return err
	}
	if taken := occupied.Overlap(seats); len(taken) > 0 {
		logger.Warn("seat conflict", zap.Int64("flight_id", flightID), zap.Strings("seats", taken))
		return &domain.ConflictError{Seats: taken}
	}
	return nil
}

// Cancel moves a booking to cancelled. Its seats leave the occupancy on the next read.
// Cancelling a cancelled booking returns it unchanged.
func (s *BookingService) Cancel(ctx context.Context, bookingID string) (*domain.Booking, error) {
	current, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if current.Status == domain.BookingStatusCancelled {
		return current, nil
	}

	updated, err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.CancellationsTotal.Inc()
	}
	logger.Info("booking cancelled",
		zap.String("booking_id", updated.ID),
		zap.Int64("flight_id", updated.FlightID),
		zap.Strings("seats", updated.Seats),
	)
	s.publish(ctx, kafka.EventBookingCancelled, updated)
	return updated, nil
}

func (s *BookingService) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, bookingID)
}

func (s *BookingService) ListUserBookings(ctx context.Context, userID string) ([]domain.Booking, error) {
	if userID == "" {
		return nil, &domain.RequestError{Field: "user_id", Reason: "is required"}
	}
	return s.bookings.ListByUser(ctx, userID)
}

// publish is best effort: the booking is already committed.
func (s *BookingService) publish(ctx context.Context, eventType string, b *domain.Booking) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:       eventType,
		BookingID:  b.ID,
		UserID:     b.UserID,
		FlightID:   b.FlightID,
		Seats:      b.Seats,
		Class:      string(b.Class),
		Status:     string(b.Status),
		OccurredAt: s.now(),
	}
	if err := s.producer.Publish(ctx, s.eventsTopic, b.ID, event); err != nil {
		logger.Warn("publish booking event", zap.String("type", eventType), zap.String("booking_id", b.ID), zap.Error(err))
	}
}

func (s *BookingService) countReservation(err error) {
	if s.metrics == nil {
		return
	}
	result := metrics.ResultSuccess
	switch {
	case err == nil:
	case domain.IsConflict(err):
		result = metrics.ResultConflict
	case domain.IsPermanent(err), domain.IsNotFound(err):
		result = metrics.ResultInvalid
	default:
		result = metrics.ResultError
	}
	s.metrics.ReservationsTotal.WithLabelValues(result).Inc()
}

var _ BookingUseCase = (*BookingService)(nil)
