package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/seatbooking/config"
	"github.com/Domenick1991/seatbooking/internal/email"
	"github.com/Domenick1991/seatbooking/internal/kafka"
	"github.com/Domenick1991/seatbooking/internal/pkg/logger"
	"github.com/Domenick1991/seatbooking/internal/pkg/metrics"
	"github.com/Domenick1991/seatbooking/internal/repository"
	"github.com/Domenick1991/seatbooking/internal/service/booking"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
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

	bookingService := booking.NewBookingService(
		repository.NewBookingRepository(pool),
		repository.NewFlightRepository(pool),
		booking.WithMetrics(metrics.Default()),
	)

	g, gctx := errgroup.WithContext(ctx)

	if cfg.Kafka.Enabled() {
		consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.BookingEventsTopic)
		defer consumer.Close()
		sender := email.NewSender(logger.Get())
		g.Go(func() error {
			return consumer.Consume(gctx, sender.Send)
		})
	} else {
		logger.Warn("kafka disabled, booking notifications are off")
	}

	g.Go(func() error {
		return runAudit(gctx, bookingService, cfg.Worker.AuditInterval())
	})

	if err := g.Wait(); err != nil {
		logger.Error("worker stopped", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("worker stopped")
}

// runAudit checks seat disjointness once at start and then on every tick.
func runAudit(ctx context.Context, svc *booking.BookingService, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		violations, err := svc.AuditDisjointness(ctx)
		switch {
		case err != nil:
			logger.Error("disjointness audit", zap.Error(err))
		case len(violations) > 0:
			logger.Error("disjointness audit found violations", zap.Int("count", len(violations)))
		default:
			logger.Debug("disjointness audit clean")
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
