package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	pb "github.com/godilite/ride-insights/api/v1"
	"github.com/godilite/ride-insights/internal/api"
	"github.com/godilite/ride-insights/internal/config"
	handler "github.com/godilite/ride-insights/internal/grpc"
	"github.com/godilite/ride-insights/internal/repository"
	"github.com/godilite/ride-insights/internal/service"
	grpcsrv "github.com/godilite/ride-insights/pkg/grpc/server"
	"github.com/godilite/ride-insights/pkg/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	logger       *zap.Logger
	handle       *repository.Handle
	metrics      *metrics.Manager
	httpServer   *http.Server
	httpListener net.Listener
	grpcServer   *grpcsrv.Server
}

// NewApp wires the store, dashboard service and both servers. An unreachable
// store is not an error: the app starts in degraded mode and says so.
func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	dbOpts, err := cfg.DatabaseOptions()
	if err != nil {
		return nil, err
	}
	handle := repository.Open(ctx, logger, dbOpts...)

	m := metrics.NewManager()
	m.SetDatabaseConnected(!handle.Disabled())

	dashboard := service.NewDashboardService(handle, logger,
		service.WithRecorder(m),
		service.WithQueryTimeout(cfg.QueryTimeout),
	)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(dashboard, logger, api.RouterConfig{
		AllowedOrigins: cfg.AllowedOrigins(),
		Metrics:        m,
	})

	lis, err := net.Listen("tcp", cfg.HTTPAddr)
	if err != nil {
		_ = handle.Close()
		return nil, fmt.Errorf("failed to listen on %s: %w", cfg.HTTPAddr, err)
	}

	grpcServer, err := grpcsrv.New(
		grpcsrv.WithPort(cfg.GRPCPort),
		grpcsrv.WithLogger(logger),
		grpcsrv.WithLogging(true),
		grpcsrv.WithReflection(cfg.GRPCReflectionEnabled),
		grpcsrv.WithUnaryInterceptors(grpcsrv.RecoveryInterceptor(logger)),
	)
	if err != nil {
		_ = lis.Close()
		_ = handle.Close()
		return nil, fmt.Errorf("failed to create gRPC server: %w", err)
	}

	grpcHandlers := handler.NewGRPCHandlers(dashboard, logger, cfg.QueryTimeout)
	grpcServer.RegisterServiceWithHealth(pb.InsightsServiceName, func(s *grpc.Server) {
		pb.RegisterInsightsServer(s, grpcHandlers)
	})

	return &App{
		logger:  logger,
		handle:  handle,
		metrics: m,
		httpServer: &http.Server{
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		httpListener: lis,
		grpcServer:   grpcServer,
	}, nil
}

// HTTPAddr is the address the dashboard page and JSON API listen on.
func (a *App) HTTPAddr() net.Addr {
	return a.httpListener.Addr()
}

// GRPCAddr is the address of the gRPC API.
func (a *App) GRPCAddr() net.Addr {
	return a.grpcServer.Addr()
}

// Run serves HTTP and gRPC until ctx is canceled or a shutdown signal is received.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info("application starting",
		zap.String("http_addr", a.HTTPAddr().String()),
		zap.String("grpc_addr", a.GRPCAddr().String()),
		zap.Bool("database_connected", !a.handle.Disabled()))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.grpcServer.Serve()
	})

	g.Go(func() error {
		if err := a.httpServer.Serve(a.httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		return a.shutdown()
	})

	return g.Wait()
}

func (a *App) shutdown() error {
	a.logger.Info("application shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.httpServer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	if err := a.grpcServer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("grpc shutdown: %w", err))
	}
	if err := a.handle.Close(); err != nil {
		a.logger.Error("database shutdown error", zap.Error(err))
	}

	if len(errs) == 0 {
		a.logger.Info("graceful shutdown completed successfully")
	}
	_ = a.logger.Sync()
	return errors.Join(errs...)
}
