package bootstrap

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/Domenick1991/seatbooking/config"
	"github.com/Domenick1991/seatbooking/internal/domain"
	"github.com/Domenick1991/seatbooking/internal/repository"
	"github.com/Domenick1991/seatbooking/internal/seatmap"
	"github.com/Domenick1991/seatbooking/internal/service/booking"
	"github.com/Domenick1991/seatbooking/internal/service/flights"
	"github.com/Domenick1991/seatbooking/internal/service/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestServers_ServeAndShutdown(t *testing.T) {
	store := repository.NewMemoryStore(domain.Flight{ID: 1, TotalSeats: 10})
	flightSvc := flights.NewFlightService(store, nil)
	bookingSvc := booking.NewBookingService(store.Bookings(), flightSvc)

	cfg := config.Defaults()
	cfg.HTTP.Address = freeAddr(t)

	s := NewServers(cfg, Services{
		Flights:  flightSvc,
		Bookings: bookingSvc,
		Reports:  report.NewReportService(flightSvc, bookingSvc, store.Bookings(), seatmap.DefaultLayout()),
	})

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, lis) }()

	url := "http://" + cfg.HTTP.Address + "/api/v1/flights/1/occupied-seats"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("servers did not stop")
	}
}
