// Package report computes occupancy and revenue. Occupancy is read from the booking engine;
// revenue is summed over confirmed bookings.
package report

import (
	"context"
	"math"

	"github.com/Domenick1991/seatbooking/internal/domain"
	"github.com/Domenick1991/seatbooking/internal/repository"
	"github.com/Domenick1991/seatbooking/internal/seatmap"
)

type FlightSource interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
}

// OccupancySource is the reservation engine's view of which seats a flight has sold.
type OccupancySource interface {
	OccupiedSeats(ctx context.Context, flightID int64) ([]string, error)
}

type FlightReport struct {
	FlightID            int64  `json:"flight_id"`
	FlightNumber        string `json:"flight_number"`
	Origin              string `json:"origin"`
	Destination         string `json:"destination"`
	Airline             string `json:"airline"`
	TotalSeats          int    `json:"total_seats"`
	OccupiedSeats       int    `json:"occupied_seats"`
	OccupancyPercentage int    `json:"occupancy_percentage"`
	RevenueCents        int64  `json:"revenue_cents"`
}

type Summary struct {
	TotalFlights      int            `json:"total_flights"`
	ConfirmedBookings int            `json:"confirmed_bookings"`
	RevenueCents      int64          `json:"revenue_cents"`
	OccupancyRate     int            `json:"occupancy_rate"`
	Flights           []FlightReport `json:"flights"`
}

type ReportUseCase interface {
	Flight(ctx context.Context, flightID int64) (*FlightReport, error)
	Summary(ctx context.Context) (*Summary, error)
}

type ReportService struct {
	flights   FlightSource
	occupancy OccupancySource
	bookings  repository.BookingRepository
	layout    seatmap.Layout
}

func NewReportService(flights FlightSource, occupancy OccupancySource, bookings repository.BookingRepository, layout seatmap.Layout) *ReportService {
	return &ReportService{flights: flights, occupancy: occupancy, bookings: bookings, layout: layout}
}

func (s *ReportService) Flight(ctx context.Context, flightID int64) (*FlightReport, error) {
	flight, err := s.flights.GetByID(ctx, flightID)
	if err != nil {
		return nil, err
	}
	confirmed, err := s.bookings.ListByFlight(ctx, flightID, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}
	r, err := s.build(ctx, flight, confirmed)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Summary aggregates every flight. The overall rate is occupied over total seats of the fleet.
func (s *ReportService) Summary(ctx context.Context) (*Summary, error) {
	flights, err := s.flights.List(ctx)
	if err != nil {
		return nil, err
	}
	confirmed, err := s.bookings.ListByStatus(ctx, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}
	byFlight := make(map[int64][]domain.Booking)
	for _, b := range confirmed {
		byFlight[b.FlightID] = append(byFlight[b.FlightID], b)
	}

	sum := &Summary{TotalFlights: len(flights), Flights: make([]FlightReport, 0, len(flights))}
	var seats, occupied int
	for i := range flights {
		r, err := s.build(ctx, &flights[i], byFlight[flights[i].ID])
		if err != nil {
			return nil, err
		}
		sum.Flights = append(sum.Flights, r)
		sum.ConfirmedBookings += len(byFlight[flights[i].ID])
		sum.RevenueCents += r.RevenueCents
		seats += r.TotalSeats
		occupied += r.OccupiedSeats
	}
	sum.OccupancyRate = percent(occupied, seats)
	return sum, nil
}

func (s *ReportService) build(ctx context.Context, f *domain.Flight, confirmed []domain.Booking) (FlightReport, error) {
	occupied, err := s.occupancy.OccupiedSeats(ctx, f.ID)
	if err != nil {
		return FlightReport{}, err
	}
	total := seatmap.ForFlight(f, s.layout).Total()
	var revenue int64
	for _, b := range confirmed {
		revenue += f.UnitPrice(b.Class) * int64(len(b.Seats))
	}
	return FlightReport{
		FlightID:            f.ID,
		FlightNumber:        f.FlightNumber,
		Origin:              f.Origin,
		Destination:         f.Destination,
		Airline:             f.Airline,
		TotalSeats:          total,
		OccupiedSeats:       len(occupied),
		OccupancyPercentage: percent(len(occupied), total),
		RevenueCents:        revenue,
	}, nil
}

func percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

var _ ReportUseCase = (*ReportService)(nil)
