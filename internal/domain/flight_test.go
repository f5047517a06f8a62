package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlight_Capacity(t *testing.T) {
	assert.Equal(t, DefaultTotalSeats, (&Flight{}).Capacity())
	assert.Equal(t, DefaultTotalSeats, (&Flight{TotalSeats: -3}).Capacity())
	assert.Equal(t, 42, (&Flight{TotalSeats: 42}).Capacity())
}

func TestFlight_Quote(t *testing.T) {
	f := &Flight{EconomyPriceCents: 12000, BusinessPriceCents: 45000}

	assert.Equal(t, int64(36000), f.Quote(SeatClassEconomy, 3))
	assert.Equal(t, int64(90000), f.Quote(SeatClassBusiness, 2))
	assert.Equal(t, int64(0), f.Quote(SeatClassEconomy, 0))
	assert.Equal(t, int64(0), f.Quote(SeatClassBusiness, -1))
}
