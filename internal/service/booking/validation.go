package booking

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Domenick1991/seatbooking/internal/domain"
	"github.com/Domenick1991/seatbooking/internal/seatmap"
	"github.com/go-playground/validator/v10"
)

// ValidateSeats is an advisory check against the current occupancy. It takes no lock and
// reserves nothing. Checks run in order: existence, class, occupancy, count.
func (s *BookingService) ValidateSeats(ctx context.Context, input ValidateSeatsInput) error {
	if !input.Class.Valid() {
		return &domain.RequestError{Field: "class", Reason: fmt.Sprintf("unknown class %q", input.Class)}
	}
	flight, err := s.flights.GetByID(ctx, input.FlightID)
	if err != nil {
		return err
	}
	if err := checkSeats(seatmap.ForFlight(flight, s.layout), input.Seats, input.Class); err != nil {
		return err
	}
	if err := s.checkFree(ctx, input.FlightID, input.Seats); err != nil {
		return err
	}
	return checkCardinality(input.Seats, input.ExpectedCount)
}

// checkRequest rejects malformed reservations before any store access.
func (s *BookingService) checkRequest(input ReserveInput) error {
	if input.UserID == "" {
		return &domain.RequestError{Field: "user_id", Reason: "is required"}
	}
	if !input.Class.Valid() {
		return &domain.RequestError{Field: "class", Reason: fmt.Sprintf("unknown class %q", input.Class)}
	}
	if err := checkCardinality(input.Seats, len(input.Passengers)); err != nil {
		return err
	}
	for i := range input.Passengers {
		if err := s.validatePassenger(i, &input.Passengers[i]); err != nil {
			return err
		}
	}
	return nil
}

// checkSeats verifies every seat exists in the map and belongs to class.
func checkSeats(sm *seatmap.SeatMap, seats []string, class domain.SeatClass) error {
	var unknown, mismatched []string
	for _, id := range seats {
		e, ok := sm.Lookup(id)
		switch {
		case !ok:
			unknown = append(unknown, id)
		case e.Class != class:
			mismatched = append(mismatched, id)
		}
	}
	if len(unknown) > 0 {
		return &domain.InvalidSeatError{Seats: unknown}
	}
	if len(mismatched) > 0 {
		return &domain.ClassMismatchError{Seats: mismatched, Requested: class}
	}
	return nil
}

// checkCardinality requires one distinct seat per passenger.
func checkCardinality(seats []string, passengers int) error {
	distinct := len(domain.NewSeatSet(seats...))
	if len(seats) == 0 || distinct != len(seats) || distinct != passengers {
		return &domain.CardinalityError{Seats: distinct, Passengers: passengers}
	}
	return nil
}

// trimPassengers returns a copy with surrounding whitespace removed from text fields.
func trimPassengers(in []domain.Passenger) []domain.Passenger {
	out := make([]domain.Passenger, len(in))
	for i, p := range in {
		p.Name = strings.TrimSpace(p.Name)
		p.Document = strings.TrimSpace(p.Document)
		out[i] = p
	}
	return out
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

func (s *BookingService) validatePassenger(i int, p *domain.Passenger) error {
	err := s.validate.Struct(p)
	if err == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) || len(fields) == 0 {
		return &domain.RequestError{Field: fmt.Sprintf("passengers[%d]", i), Reason: err.Error()}
	}
	fe := fields[0]
	return &domain.RequestError{
		Field:  fmt.Sprintf("passengers[%d].%s", i, fe.Field()),
		Reason: describeTag(fe),
	}
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	default:
		return "failed " + fe.Tag()
	}
}
