package booking

import (
	"context"
	"sort"

	"github.com/Domenick1991/seatbooking/internal/domain"
	"github.com/Domenick1991/seatbooking/internal/seatmap"
)

// OccupiedSeats returns the union of seats held by confirmed bookings of the flight, in seat
// map order. The result is a snapshot taken at read time.
func (s *BookingService) OccupiedSeats(ctx context.Context, flightID int64) ([]string, error) {
	flight, err := s.flights.GetByID(ctx, flightID)
	if err != nil {
		return nil, err
	}
	occupied, err := s.occupancy(ctx, flightID)
	if err != nil {
		return nil, err
	}
	return orderBySeatMap(occupied, seatmap.ForFlight(flight, s.layout)), nil
}

func (s *BookingService) occupancy(ctx context.Context, flightID int64) (domain.SeatSet, error) {
	confirmed, err := s.bookings.ListByFlight(ctx, flightID, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}
	occupied := domain.NewSeatSet()
	for _, b := range confirmed {
		for _, seat := range b.Seats {
			occupied[seat] = struct{}{}
		}
	}
	return occupied, nil
}

// orderBySeatMap sorts by position in the map; ids unknown to the map go last, lexically.
func orderBySeatMap(set domain.SeatSet, sm *seatmap.SeatMap) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	pos := make(map[string]int, len(sm.Seats()))
	for i, e := range sm.Seats() {
		pos[e.ID] = i
	}
	sort.Slice(out, func(i, j int) bool {
		pi, iok := pos[out[i]]
		pj, jok := pos[out[j]]
		switch {
		case iok && jok:
			return pi < pj
		case iok != jok:
			return iok
		default:
			return out[i] < out[j]
		}
	})
	return out
}
