package flights_service_api

import (
	"context"
	"time"

	"github.com/Domenick1991/seatbooking/internal/domain"
	"github.com/Domenick1991/seatbooking/internal/service/booking"
	"github.com/Domenick1991/seatbooking/internal/service/flights"
)

type Empty struct{}

type GetFlightRequest struct {
	ID int64 `json:"id"`
}

type ListFlightsResponse struct {
	Flights []*Flight `json:"flights"`
}

type GetSeatMapRequest struct {
	FlightID int64    `json:"flight_id"`
	Selected []string `json:"selected"`
}

type Flight struct {
	ID                 int64  `json:"id"`
	FlightNumber       string `json:"flight_number"`
	Origin             string `json:"origin"`
	Destination        string `json:"destination"`
	DepartureTime      string `json:"departure_time"`
	ArrivalTime        string `json:"arrival_time"`
	Airline            string `json:"airline"`
	TotalSeats         int    `json:"total_seats"`
	EconomyPriceCents  int64  `json:"economy_price_cents"`
	BusinessPriceCents int64  `json:"business_price_cents"`
}

// Server implements FlightsServiceServer.
type Server struct {
	flights   flights.FlightUseCase
	inventory booking.BookingUseCase
}

func NewServer(flights flights.FlightUseCase, inventory booking.BookingUseCase) *Server {
	return &Server{flights: flights, inventory: inventory}
}

func (s *Server) ListFlights(ctx context.Context, _ *Empty) (*ListFlightsResponse, error) {
	list, err := s.flights.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := &ListFlightsResponse{
		Flights: make([]*Flight, 0, len(list)),
	}
	for i := range list {
		resp.Flights = append(resp.Flights, toPBFlight(&list[i]))
	}
	return resp, nil
}

func (s *Server) GetFlight(ctx context.Context, req *GetFlightRequest) (*Flight, error) {
	flight, err := s.flights.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return toPBFlight(flight), nil
}

func (s *Server) GetSeatMap(ctx context.Context, req *GetSeatMapRequest) (*booking.SeatMapView, error) {
	return s.inventory.SeatMap(ctx, req.FlightID, req.Selected)
}

func toPBFlight(f *domain.Flight) *Flight {
	if f == nil {
		return nil
	}
	return &Flight{
		ID:                 f.ID,
		FlightNumber:       f.FlightNumber,
		Origin:             f.Origin,
		Destination:        f.Destination,
		DepartureTime:      f.DepartureTime.Format(time.RFC3339),
		ArrivalTime:        f.ArrivalTime.Format(time.RFC3339),
		Airline:            f.Airline,
		TotalSeats:         f.Capacity(),
		EconomyPriceCents:  f.EconomyPriceCents,
		BusinessPriceCents: f.BusinessPriceCents,
	}
}

var _ FlightsServiceServer = (*Server)(nil)
