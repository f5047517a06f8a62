package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Passenger struct {
	Name     string `json:"name" validate:"required"`
	Document string `json:"document" validate:"required"`
	Age      int    `json:"age" validate:"gte=1,lte=120"`
}

// Booking is never deleted and its seat list is never changed after creation.
type Booking struct {
	ID         string        `json:"id"`
	UserID     string        `json:"user_id"`
	FlightID   int64         `json:"flight_id"`
	Seats      []string      `json:"seats"`
	Class      SeatClass     `json:"class"`
	Passengers []Passenger   `json:"passengers"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// HoldsSeats reports whether the booking counts toward flight occupancy.
func (b *Booking) HoldsSeats() bool {
	return b.Status == BookingStatusConfirmed
}

// Clone returns a deep copy so callers cannot mutate stored slices.
func (b *Booking) Clone() *Booking {
	if b == nil {
		return nil
	}
	c := *b
	c.Seats = append([]string(nil), b.Seats...)
	c.Passengers = append([]Passenger(nil), b.Passengers...)
	return &c
}
