package domain

import "time"

// DefaultTotalSeats is used when a flight record carries no seat count.
const DefaultTotalSeats = 180

type Flight struct {
	ID                 int64     `json:"id"`
	FlightNumber       string    `json:"flight_number"`
	Origin             string    `json:"origin"`
	Destination        string    `json:"destination"`
	DepartureTime      time.Time `json:"departure_time"`
	ArrivalTime        time.Time `json:"arrival_time"`
	Airline            string    `json:"airline"`
	TotalSeats         int       `json:"total_seats"`
	EconomyPriceCents  int64     `json:"economy_price_cents"`
	BusinessPriceCents int64     `json:"business_price_cents"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Capacity returns the seat count used to generate the seat map.
func (f *Flight) Capacity() int {
	if f.TotalSeats <= 0 {
		return DefaultTotalSeats
	}
	return f.TotalSeats
}

// UnitPrice returns the per-seat price for the class.
func (f *Flight) UnitPrice(class SeatClass) int64 {
	if class == SeatClassBusiness {
		return f.BusinessPriceCents
	}
	return f.EconomyPriceCents
}

// Quote prices a number of seats of one class. Non-positive counts quote zero.
func (f *Flight) Quote(class SeatClass, seats int) int64 {
	if seats <= 0 {
		return 0
	}
	return f.UnitPrice(class) * int64(seats)
}
