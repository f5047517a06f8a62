package bookings_service_api

import "github.com/Domenick1991/seatbooking/internal/domain"

type OccupiedSeatsRequest struct {
	FlightID int64 `json:"flight_id"`
}

type OccupiedSeatsResponse struct {
	FlightID int64    `json:"flight_id"`
	Seats    []string `json:"seats"`
}

type ValidateSeatsRequest struct {
	FlightID      int64    `json:"flight_id"`
	Seats         []string `json:"seats"`
	Class         string   `json:"class"`
	ExpectedCount int      `json:"expected_count"`
}

type ValidateSeatsResponse struct {
	Valid bool `json:"valid"`
}

type ReserveRequest struct {
	FlightID   int64       `json:"flight_id"`
	UserID     string      `json:"user_id"`
	Class      string      `json:"class"`
	Seats      []string    `json:"seats"`
	Passengers []Passenger `json:"passengers"`
}

type BookingIDRequest struct {
	BookingID string `json:"booking_id"`
}

type ListUserBookingsRequest struct {
	UserID string `json:"user_id"`
}

type ListBookingsResponse struct {
	Bookings []*Booking `json:"bookings"`
}

type Passenger struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Age      int    `json:"age"`
}

type Booking struct {
	ID         string      `json:"id"`
	UserID     string      `json:"user_id"`
	FlightID   int64       `json:"flight_id"`
	Seats      []string    `json:"seats"`
	Class      string      `json:"class"`
	Passengers []Passenger `json:"passengers"`
	Status     string      `json:"status"`
	CreatedAt  string      `json:"created_at"`
	UpdatedAt  string      `json:"updated_at"`
}

func toDomainPassengers(in []Passenger) []domain.Passenger {
	if in == nil {
		return nil
	}
	out := make([]domain.Passenger, len(in))
	for i, p := range in {
		out[i] = domain.Passenger{Name: p.Name, Document: p.Document, Age: p.Age}
	}
	return out
}

func toPassengers(in []domain.Passenger) []Passenger {
	out := make([]Passenger, len(in))
	for i, p := range in {
		out[i] = Passenger{Name: p.Name, Document: p.Document, Age: p.Age}
	}
	return out
}
