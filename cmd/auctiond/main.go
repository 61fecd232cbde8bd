package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/openbid/auctiond/internal/auction"
	"github.com/openbid/auctiond/internal/clock"
	"github.com/openbid/auctiond/internal/config"
	"github.com/openbid/auctiond/internal/directory"
	"github.com/openbid/auctiond/internal/events"
	"github.com/openbid/auctiond/internal/health"
	"github.com/openbid/auctiond/internal/ids"
	"github.com/openbid/auctiond/internal/ledger"
	"github.com/openbid/auctiond/internal/server"
	"github.com/openbid/auctiond/internal/telemetry"

	// Register ledger drivers so they are available via ledger.Open.
	_ "github.com/openbid/auctiond/internal/ledger/memledger"
	_ "github.com/openbid/auctiond/internal/ledger/redisledger"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	if err := run(*configPath); err != nil {
		slog.Error("fatal error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(configPath string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	tp, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		slog.Warn("telemetry setup failed, continuing without OTEL export", slog.Any("error", err))
		tp = telemetry.NewNopProvider()
	}
	defer func() {
		if shutdownErr := tp.Shutdown(context.Background()); shutdownErr != nil {
			slog.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	logger := tp.Logger
	clk := clock.Real{}

	// Open the ledger using the configured driver (redis or memory).
	store, err := ledger.Open(ctx, cfg.Ledger)
	if err != nil {
		return fmt.Errorf("opening ledger (driver=%s): %w", cfg.Ledger.Driver, err)
	}
	defer store.Close()

	logger.InfoContext(ctx, "connected to ledger", slog.String("driver", cfg.Ledger.Driver))

	var publisher events.Publisher = events.Nop{}
	if cfg.NATS.Enabled {
		np, pubErr := events.NewNATSPublisher(ctx, cfg.NATS.URL, logger)
		if pubErr != nil {
			return fmt.Errorf("connecting event publisher: %w", pubErr)
		}
		publisher = np
		logger.InfoContext(ctx, "event publishing enabled", slog.String("url", cfg.NATS.URL))
	}
	defer publisher.Close()

	alloc := ids.New(store, cfg.Engine.MaxRetries, tp.TracerProvider)
	dir := directory.New(store)
	engine := auction.NewEngine(store, alloc, dir, publisher, logger, tp.TracerProvider, clk, cfg.Engine)

	healthHandler := health.NewHandler(clk,
		health.Checker{
			Name:  "ledger",
			Check: store.Ping,
		},
	)

	srv := server.New(engine, dir, healthHandler, logger)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.InfoContext(ctx, "starting http server", slog.Int("port", cfg.Server.Port))
		if listenErr := httpServer.ListenAndServe(); listenErr != nil && listenErr != http.ErrServerClosed {
			logger.ErrorContext(ctx, "http server error", slog.Any("error", listenErr))
			cancel()
		}
	}()

	healthHandler.SetReady(true)
	logger.InfoContext(ctx, "auctiond is running", slog.String("version", version))

	<-ctx.Done()
	logger.Info("shutting down...")

	healthHandler.SetReady(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}
