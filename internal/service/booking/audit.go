package booking

import (
	"context"
	"sort"

	"github.com/Domenick1991/seatbooking/internal/domain"
	"github.com/Domenick1991/seatbooking/internal/pkg/logger"
	"go.uber.org/zap"
)

// Violation is a seat held by more than one confirmed booking of a flight.
type Violation struct {
	FlightID   int64    `json:"flight_id"`
	Seat       string   `json:"seat"`
	BookingIDs []string `json:"booking_ids"`
}

// AuditDisjointness scans all confirmed bookings and reports seats claimed twice on one flight.
func (s *BookingService) AuditDisjointness(ctx context.Context) ([]Violation, error) {
	confirmed, err := s.bookings.ListByStatus(ctx, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}

	type seatKey struct {
		flightID int64
		seat     string
	}
	holders := make(map[seatKey][]string)
	for _, b := range confirmed {
		for _, seat := range b.Seats {
			k := seatKey{b.FlightID, seat}
			holders[k] = append(holders[k], b.ID)
		}
	}

	var violations []Violation
	for k, ids := range holders {
		if len(ids) < 2 {
			continue
		}
		sort.Strings(ids)
		violations = append(violations, Violation{FlightID: k.flightID, Seat: k.seat, BookingIDs: ids})
	}
	sort.Slice(violations, func(i, j int) bool {
		if violations[i].FlightID != violations[j].FlightID {
			return violations[i].FlightID < violations[j].FlightID
		}
		return violations[i].Seat < violations[j].Seat
	})

	for _, v := range violations {
		logger.Error("seat held by several confirmed bookings",
			zap.Int64("flight_id", v.FlightID),
			zap.String("seat", v.Seat),
			zap.Strings("booking_ids", v.BookingIDs),
		)
	}
	if s.metrics != nil && len(violations) > 0 {
		s.metrics.DisjointnessViolations.Add(float64(len(violations)))
	}
	return violations, nil
}
