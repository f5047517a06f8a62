package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/seatbooking/config"
	"github.com/Domenick1991/seatbooking/internal/bootstrap"
	"github.com/Domenick1991/seatbooking/internal/cache"
	"github.com/Domenick1991/seatbooking/internal/kafka"
	"github.com/Domenick1991/seatbooking/internal/pkg/logger"
	"github.com/Domenick1991/seatbooking/internal/pkg/metrics"
	"github.com/Domenick1991/seatbooking/internal/repository"
	"github.com/Domenick1991/seatbooking/internal/seatmap"
	"github.com/Domenick1991/seatbooking/internal/service/booking"
	"github.com/Domenick1991/seatbooking/internal/service/flights"
	"github.com/Domenick1991/seatbooking/internal/service/report"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	logger.Set(logger.NewLogger(cfg.Log.Env))
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Fatal("connect postgres", zap.Error(err))
	}
	defer pool.Close()

	if cfg.Database.Migrate {
		if err := repository.Migrate(ctx, pool); err != nil {
			logger.Fatal("migrate schema", zap.Error(err))
		}
	}

	m := metrics.Default()
	layout := seatmap.Layout{
		BusinessSharePercent: cfg.Booking.BusinessSharePercent,
		SeatsPerRow:          cfg.Booking.SeatsPerRow,
	}
	opts := []booking.BookingServiceOption{
		booking.WithLayout(layout),
		booking.WithMetrics(m),
	}

	flightRepo := repository.NewFlightRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	var flightCache flights.FlightCache
	if cfg.Redis.Enabled() {
		client := cache.NewClient(cfg.Redis)
		defer client.Close()
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Fatal("connect redis", zap.Error(err))
		}
		flightCache = cache.NewRedisCache(client, cfg.Booking.CacheTTL())
		if cfg.Booking.DistributedLock {
			locker := cache.NewFlightLock(client, cfg.Booking.LockTTL(), cfg.Booking.LockRetries, cfg.Booking.LockRetryDelay())
			opts = append(opts, booking.WithLocker(locker, "redis"))
		}
	}

	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		opts = append(opts, booking.WithEvents(producer, cfg.Kafka.BookingEventsTopic))
	}

	flightService := flights.NewFlightService(flightRepo, flightCache)
	bookingService := booking.NewBookingService(bookingRepo, flightService, opts...)
	reportService := report.NewReportService(flightService, bookingService, bookingRepo, layout)

	logger.Info("starting seat booking api",
		zap.String("http", cfg.HTTP.Address),
		zap.String("grpc", cfg.GRPC.Address),
		zap.Bool("redis", cfg.Redis.Enabled()),
		zap.Bool("kafka", cfg.Kafka.Enabled()),
	)

	err = bootstrap.Run(ctx, cfg, bootstrap.Services{
		Flights:  flightService,
		Bookings: bookingService,
		Reports:  reportService,
		Metrics:  m,
		Gatherer: prometheus.DefaultGatherer,
	})
	if err != nil {
		logger.Error("server error", zap.Error(err))
		os.Exit(1)
	}
}
