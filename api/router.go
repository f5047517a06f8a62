package api

import (
	"net/http"

	"github.com/Domenick1991/seatbooking/internal/pkg/metrics"
	"github.com/Domenick1991/seatbooking/internal/service/booking"
	"github.com/Domenick1991/seatbooking/internal/service/flights"
	"github.com/Domenick1991/seatbooking/internal/service/report"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SwaggerDocument is the file name served under /swagger/ and loaded by the docs UI.
const SwaggerDocument = "seats.swagger.json"

type RouterDeps struct {
	Flights  flights.FlightUseCase
	Bookings booking.BookingUseCase
	Reports  report.ReportUseCase

	// Optional.
	Metrics    *metrics.Metrics
	Gatherer   prometheus.Gatherer
	SwaggerDir string
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger())
	if d.Metrics != nil {
		r.Use(Metrics(d.Metrics))
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	v1 := r.Group("/api/v1")
	NewFlightHandler(d.Flights, d.Bookings).Register(v1.Group("/flights"))
	NewBookingHandler(d.Bookings).Register(v1.Group("/bookings"))
	NewReportHandler(d.Reports).Register(v1.Group("/reports"))

	if d.SwaggerDir != "" {
		r.Static("/swagger", d.SwaggerDir)
		r.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/"+SwaggerDocument))))
	}
	return r
}
