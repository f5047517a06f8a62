package booking

import (
	"context"
	"strings"
	"time"

	"github.com/Domenick1991/seatbooking/internal/domain"
	"github.com/Domenick1991/seatbooking/internal/seatmap"
)

type SeatMapView struct {
	FlightID           int64                    `json:"flight_id"`
	TotalSeats         int                      `json:"total_seats"`
	Available          map[domain.SeatClass]int `json:"available"`
	EconomyPriceCents  int64                    `json:"economy_price_cents"`
	BusinessPriceCents int64                    `json:"business_price_cents"`
	// Price of the selected seats, priced by each seat's class.
	SelectionPriceCents int64           `json:"selection_price_cents"`
	Rows                [][]domain.Seat `json:"rows"`
}

// SeatMap renders the flight's seats with their status. Seats in selected that are not
// occupied are marked selected; nothing is held for them.
func (s *BookingService) SeatMap(ctx context.Context, flightID int64, selected []string) (*SeatMapView, error) {
	flight, err := s.flights.GetByID(ctx, flightID)
	if err != nil {
		return nil, err
	}
	occupied, err := s.occupancy(ctx, flightID)
	if err != nil {
		return nil, err
	}
	sm := seatmap.ForFlight(flight, s.layout)
	chosen := domain.NewSeatSet(selected...)

	view := &SeatMapView{
		FlightID:           flight.ID,
		TotalSeats:         sm.Total(),
		Available:          map[domain.SeatClass]int{domain.SeatClassEconomy: 0, domain.SeatClassBusiness: 0},
		EconomyPriceCents:  flight.EconomyPriceCents,
		BusinessPriceCents: flight.BusinessPriceCents,
	}
	for _, row := range sm.Rows() {
		seats := make([]domain.Seat, 0, len(row))
		for _, e := range row {
			seat := domain.Seat{ID: e.ID, Class: e.Class, Row: e.Row, Status: domain.SeatStatusAvailable}
			switch {
			case occupied.Has(e.ID):
				seat.Status = domain.SeatStatusOccupied
			case chosen.Has(e.ID):
				seat.Status = domain.SeatStatusSelected
				view.SelectionPriceCents += flight.UnitPrice(e.Class)
			}
			if seat.Status != domain.SeatStatusOccupied {
				view.Available[e.Class]++
			}
			seats = append(seats, seat)
		}
		view.Rows = append(view.Rows, seats)
	}
	return view, nil
}

type SearchQuery struct {
	Origin      string
	Destination string
	// Departure day in UTC, zero to match any day.
	Date       time.Time
	Passengers int
	Class      domain.SeatClass
}

type FlightAvailability struct {
	Flight         domain.Flight `json:"flight"`
	AvailableSeats int           `json:"available_seats"`
}

// SearchFlights filters flights by route and date and keeps those with enough free seats
// in the requested class. Availability is derived from occupancy at read time.
func (s *BookingService) SearchFlights(ctx context.Context, query SearchQuery) ([]FlightAvailability, error) {
	class := query.Class
	if class == "" {
		class = domain.SeatClassEconomy
	}
	if !class.Valid() {
		return nil, &domain.RequestError{Field: "class", Reason: "unknown class " + string(class)}
	}

	flights, err := s.flights.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]FlightAvailability, 0)
	for _, f := range flights {
		if !matchesPlace(f.Origin, query.Origin) || !matchesPlace(f.Destination, query.Destination) {
			continue
		}
		if !query.Date.IsZero() && !sameDay(f.DepartureTime, query.Date) {
			continue
		}
		occupied, err := s.occupancy(ctx, f.ID)
		if err != nil {
			return nil, err
		}
		free := freeSeats(seatmap.ForFlight(&f, s.layout), class, occupied)
		if query.Passengers > 0 && free < query.Passengers {
			continue
		}
		out = append(out, FlightAvailability{Flight: f, AvailableSeats: free})
	}
	return out, nil
}

func freeSeats(sm *seatmap.SeatMap, class domain.SeatClass, occupied domain.SeatSet) int {
	free := 0
	for _, e := range sm.Seats() {
		if e.Class == class && !occupied.Has(e.ID) {
			free++
		}
	}
	return free
}

func matchesPlace(value, filter string) bool {
	filter = strings.TrimSpace(filter)
	return filter == "" || strings.Contains(strings.ToLower(value), strings.ToLower(filter))
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
