package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/calenfir/bazaar/internal/bootstrap"
	"github.com/calenfir/bazaar/internal/catalog"
	"github.com/calenfir/bazaar/internal/config"
	"github.com/calenfir/bazaar/internal/database"
	"github.com/calenfir/bazaar/internal/server"
	"github.com/calenfir/bazaar/internal/trade"
)

const (
	serviceName = "bazaar"

	dbMaxConnIdleTime = 5 * time.Minute
	dbMaxConnLifetime = 30 * time.Minute

	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)
	slog.Info("Starting bazaar", "environment", cfg.Environment, "port", cfg.Port)

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, dbMaxConnIdleTime, dbMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		return
	}
	defer dbPool.Close()

	_, resilientPublisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Failed to initialize event system", "error", err)
		return
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	catalogService := catalog.NewService(repos.Item, repos.Shop, repos.Inventory)
	tradeService := trade.NewService(repos.Trade, resilientPublisher, trade.DefaultPrunePolicy())

	srv := server.NewServer(cfg.Port, dbPool, tradeService, catalogService)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		ResilientPublisher: resilientPublisher,
	})
}
