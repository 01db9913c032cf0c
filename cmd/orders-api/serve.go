package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/MikeMC777/stencil-orders/internal/config"
	"github.com/MikeMC777/stencil-orders/internal/db"
	"github.com/MikeMC777/stencil-orders/internal/healthgrpc"
	"github.com/MikeMC777/stencil-orders/internal/logging"
	"github.com/MikeMC777/stencil-orders/internal/order"
	"github.com/MikeMC777/stencil-orders/internal/report"
	"github.com/MikeMC777/stencil-orders/internal/shipment"
	"github.com/MikeMC777/stencil-orders/internal/telemetry"
)

const (
	connectTimeout  = 10 * time.Second
	shutdownTimeout = 15 * time.Second
	healthInterval  = 5 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API (and the gRPC health server when configured)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// bootstrap loads config, installs the logger and tracer and opens the pool.
// Callers own the returned pool and provider.
func bootstrap(ctx context.Context) (config.Config, *slog.Logger, *telemetry.Provider, *db.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, nil, nil, fmt.Errorf("config: %w", err)
	}
	log := logging.New(cfg.LogLevel)
	slog.SetDefault(log)
	cfg.LogValues(log)

	tp, err := telemetry.Setup(ctx, telemetry.Options{
		ServiceName:  cfg.ServiceName,
		Version:      version,
		OTLPEndpoint: cfg.OTLPEndpoint,
		Stdout:       cfg.TraceStdout,
	})
	if err != nil {
		return cfg, log, nil, nil, err
	}

	cctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	pool, err := db.Open(cctx, cfg.DatabaseURL, cfg.PoolMin, cfg.PoolMax,
		db.WithTracer(db.NewQueryTracer(tp.TracerProvider())))
	if err != nil {
		_ = tp.Shutdown(context.Background())
		return cfg, log, nil, nil, err
	}
	log.Info("db pool ready", "min", cfg.PoolMin, "max", cfg.PoolMax)
	return cfg, log, tp, pool, nil
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, log, tp, pool, err := bootstrap(ctx)
	if err != nil {
		return err
	}

	router := newRouter(deps{
		Orders:         order.NewPGRepo(pool, cfg.QueryTimeout),
		Shipments:      shipment.NewPGRepo(pool, cfg.QueryTimeout),
		Reports:        report.NewPGRepo(pool, cfg.QueryTimeout),
		Logger:         log,
		AdminTokenHash: cfg.AdminTokenHash,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           telemetry.HTTPHandler(router, "orders-api", tp.TracerProvider()),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.QueryTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errc := make(chan error, 2)
	go func() {
		log.Info("http listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- fmt.Errorf("http: %w", err)
		}
	}()

	var hs *healthgrpc.Server
	if cfg.GRPCHealthAddr != "" {
		lis, err := net.Listen("tcp", cfg.GRPCHealthAddr)
		if err != nil {
			stop()
			shutdown(log, srv, nil, tp, pool)
			return fmt.Errorf("grpc health listen: %w", err)
		}
		hs = healthgrpc.New(pool, healthInterval, log)
		go hs.Run(ctx)
		go func() {
			log.Info("grpc health listening", "addr", cfg.GRPCHealthAddr)
			if err := hs.Serve(lis); err != nil {
				errc <- fmt.Errorf("grpc health: %w", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err = <-errc:
		log.Error("server failed", "error", err)
	}
	stop()
	shutdown(log, srv, hs, tp, pool)
	return err
}

// shutdown stops intake first and releases the pool last, once no handler
// can still be holding a connection.
func shutdown(log *slog.Logger, srv *http.Server, hs *healthgrpc.Server, tp *telemetry.Provider, pool *db.Pool) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("http shutdown", "error", err)
	}
	if hs != nil {
		hs.Stop()
	}
	if err := tp.Shutdown(ctx); err != nil {
		log.Error("tracer shutdown", "error", err)
	}
	pool.Close()
	log.Info("stopped")
}
