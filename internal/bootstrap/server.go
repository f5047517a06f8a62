package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Domenick1991/seatbooking/api"
	"github.com/Domenick1991/seatbooking/config"
	bookingsapi "github.com/Domenick1991/seatbooking/internal/api/bookings_service_api"
	flightsapi "github.com/Domenick1991/seatbooking/internal/api/flights_service_api"
	"github.com/Domenick1991/seatbooking/internal/api/rpc"
	"github.com/Domenick1991/seatbooking/internal/pkg/logger"
	"github.com/Domenick1991/seatbooking/internal/pkg/metrics"
	"github.com/Domenick1991/seatbooking/internal/service/booking"
	"github.com/Domenick1991/seatbooking/internal/service/flights"
	"github.com/Domenick1991/seatbooking/internal/service/report"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

const shutdownTimeout = 5 * time.Second

type Services struct {
	Flights  flights.FlightUseCase
	Bookings booking.BookingUseCase
	Reports  report.ReportUseCase
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
}

type Servers struct {
	grpcServer *grpc.Server
	httpServer *http.Server
}

// Run starts the gRPC and HTTP servers and blocks until ctx is canceled or a server fails.
func Run(ctx context.Context, cfg *config.Config, svc Services) error {
	s := NewServers(cfg, svc)

	lis, err := net.Listen("tcp", cfg.GRPC.Address)
	if err != nil {
		return fmt.Errorf("listen gRPC %s: %w", cfg.GRPC.Address, err)
	}
	return s.Serve(ctx, lis)
}

func NewServers(cfg *config.Config, svc Services) *Servers {
	grpcSrv := grpc.NewServer(rpc.ServerOptions()...)
	flightsapi.RegisterFlightsServiceServer(grpcSrv, flightsapi.NewServer(svc.Flights, svc.Bookings))
	bookingsapi.RegisterReservationServiceServer(grpcSrv, bookingsapi.NewServer(svc.Bookings))

	if cfg.Log.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(api.RouterDeps{
		Flights:    svc.Flights,
		Bookings:   svc.Bookings,
		Reports:    svc.Reports,
		Metrics:    svc.Metrics,
		Gatherer:   svc.Gatherer,
		SwaggerDir: cfg.HTTP.SwaggerDir,
	})

	return &Servers{
		grpcServer: grpcSrv,
		httpServer: &http.Server{
			Addr:              cfg.HTTP.Address,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Serve runs both servers on lis and the configured HTTP address until ctx is done.
func (s *Servers) Serve(ctx context.Context, lis net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("grpc server listening", zap.String("addr", lis.Addr().String()))
		if err := s.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("serve gRPC: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		logger.Info("http server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.grpcServer.GracefulStop()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	return g.Wait()
}
