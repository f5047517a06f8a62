package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Reservation results used as the "result" label.
const (
	ResultSuccess  = "success"
	ResultConflict = "conflict"
	ResultInvalid  = "invalid"
	ResultError    = "error"
)

type Metrics struct {
	// method, path, status_code
	HTTPRequestsTotal *prometheus.CounterVec

	// method, path
	HTTPRequestDuration *prometheus.HistogramVec

	// result
	ReservationsTotal *prometheus.CounterVec

	CancellationsTotal prometheus.Counter

	// Time waiting for the per-flight critical section. backend: memory, redis
	LockWaitDuration *prometheus.HistogramVec

	// Confirmed seat sets found overlapping by the audit worker.
	DisjointnessViolations prometheus.Counter
}

func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		ReservationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seat_reservations_total",
				Help: "Reservation attempts by result",
			},
			[]string{"result"},
		),
		CancellationsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "seat_cancellations_total",
				Help: "Bookings transitioned to cancelled",
			},
		),
		LockWaitDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flight_lock_wait_seconds",
				Help:    "Time spent acquiring the per-flight reservation lock",
				Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"backend"},
		),
		DisjointnessViolations: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "seat_disjointness_violations_total",
				Help: "Seats found in more than one confirmed booking of a flight",
			},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.ReservationsTotal,
		m.CancellationsTotal,
		m.LockWaitDuration,
		m.DisjointnessViolations,
	)

	return m
}

var (
	defaultOnce    sync.Once
	defaultMetrics *Metrics
)

// Default returns the process-wide instance registered on the default registry.
func Default() *Metrics {
	defaultOnce.Do(func() {
		defaultMetrics = New()
	})
	return defaultMetrics
}
