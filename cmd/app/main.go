package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/matkaworks/matka-backend/internal/betting"
	"github.com/matkaworks/matka-backend/internal/bootstrap"
	"github.com/matkaworks/matka-backend/internal/config"
	"github.com/matkaworks/matka-backend/internal/database"
	"github.com/matkaworks/matka-backend/internal/game"
	"github.com/matkaworks/matka-backend/internal/gamewindow"
	"github.com/matkaworks/matka-backend/internal/handler"
	"github.com/matkaworks/matka-backend/internal/server"
	"github.com/matkaworks/matka-backend/internal/settlement"
	"github.com/matkaworks/matka-backend/internal/wallet"
	"github.com/matkaworks/matka-backend/internal/worker"
)

const (
	dbMaxConnections = 25
	dbMaxIdleTime    = 5 * time.Minute
	dbMaxLifetime    = 30 * time.Minute

	shutdownTimeout = 15 * time.Second
)

func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg, handler.Version)
	if err != nil {
		return err
	}
	defer logFile.Close()

	warnings, err := config.ValidateEnvWithWarnings()
	for _, warning := range warnings {
		slog.Warn(warning)
	}
	if err != nil {
		return err
	}

	dbPool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConnections, dbMaxIdleTime, dbMaxLifetime)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	// The displayed waiting boundary has to match the worker's rollover
	// instant.
	rolloverMinutes, err := gamewindow.ParseMinutes(cfg.RolloverTime)
	if err != nil {
		return fmt.Errorf("invalid ROLLOVER_TIME value %q: %w", cfg.RolloverTime, err)
	}
	gamewindow.SetRollover(rolloverMinutes)

	handler.InitValidator()

	repos := bootstrap.InitializeRepositories(dbPool)

	gameService := game.NewService(repos.Game, loc, time.Now)
	bettingService := betting.NewService(repos.Betting, loc, time.Now)
	settlementService := settlement.NewService(repos.Settlement, loc, time.Now)
	walletService := wallet.NewService(repos.Wallet)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool,
		gameService, bettingService, settlementService, walletService)

	rolloverWorker, err := worker.NewRolloverWorker(gameService, loc, cfg.RolloverTime)
	if err != nil {
		return fmt.Errorf("failed to create rollover worker: %w", err)
	}
	rolloverWorker.Start()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-stop:
		slog.Info("Received shutdown signal", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:         srv,
		RolloverWorker: rolloverWorker,
		DBPool:         dbPool,
	})

	return nil
}
