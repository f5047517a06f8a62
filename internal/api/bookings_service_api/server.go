package bookings_service_api

import (
	"context"
	"time"

	"github.com/Domenick1991/seatbooking/internal/domain"
	"github.com/Domenick1991/seatbooking/internal/service/booking"
)

// Server implements ReservationServiceServer over the booking use case.
type Server struct {
	bookings booking.BookingUseCase
}

func NewServer(bookings booking.BookingUseCase) *Server {
	return &Server{bookings: bookings}
}

func (s *Server) GetOccupiedSeats(ctx context.Context, req *OccupiedSeatsRequest) (*OccupiedSeatsResponse, error) {
	seats, err := s.bookings.OccupiedSeats(ctx, req.FlightID)
	if err != nil {
		return nil, err
	}
	return &OccupiedSeatsResponse{FlightID: req.FlightID, Seats: seats}, nil
}

func (s *Server) ValidateSeats(ctx context.Context, req *ValidateSeatsRequest) (*ValidateSeatsResponse, error) {
	err := s.bookings.ValidateSeats(ctx, booking.ValidateSeatsInput{
		FlightID:      req.FlightID,
		Seats:         req.Seats,
		Class:         domain.SeatClass(req.Class),
		ExpectedCount: req.ExpectedCount,
	})
	if err != nil {
		return nil, err
	}
	return &ValidateSeatsResponse{Valid: true}, nil
}

func (s *Server) Reserve(ctx context.Context, req *ReserveRequest) (*Booking, error) {
	created, err := s.bookings.Reserve(ctx, booking.ReserveInput{
		FlightID:   req.FlightID,
		Seats:      req.Seats,
		Passengers: toDomainPassengers(req.Passengers),
		Class:      domain.SeatClass(req.Class),
		UserID:     req.UserID,
	})
	if err != nil {
		return nil, err
	}
	return toPBBooking(created), nil
}

func (s *Server) Cancel(ctx context.Context, req *BookingIDRequest) (*Booking, error) {
	b, err := s.bookings.Cancel(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	return toPBBooking(b), nil
}

func (s *Server) GetBooking(ctx context.Context, req *BookingIDRequest) (*Booking, error) {
	b, err := s.bookings.GetBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	return toPBBooking(b), nil
}

func (s *Server) ListUserBookings(ctx context.Context, req *ListUserBookingsRequest) (*ListBookingsResponse, error) {
	bookings, err := s.bookings.ListUserBookings(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	resp := &ListBookingsResponse{Bookings: make([]*Booking, 0, len(bookings))}
	for i := range bookings {
		resp.Bookings = append(resp.Bookings, toPBBooking(&bookings[i]))
	}
	return resp, nil
}

func toPBBooking(b *domain.Booking) *Booking {
	if b == nil {
		return nil
	}

	return &Booking{
		ID:         b.ID,
		UserID:     b.UserID,
		FlightID:   b.FlightID,
		Seats:      b.Seats,
		Class:      string(b.Class),
		Passengers: toPassengers(b.Passengers),
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  b.UpdatedAt.Format(time.RFC3339),
	}
}

var _ ReservationServiceServer = (*Server)(nil)
