package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"airline_tycoon/internal/api"
	"airline_tycoon/internal/catalog"
	"airline_tycoon/internal/config"
	"airline_tycoon/internal/game"
	"airline_tycoon/internal/logger"
	"airline_tycoon/internal/persistence"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger.Init(cfg.Logging)

	store, err := persistence.Open(cfg.Storage.Path)
	if err != nil {
		slog.Error("failed to open database", "path", cfg.Storage.Path, "error", err)
		os.Exit(1)
	}
	defer store.Close()
	store.SetRetention(cfg.Storage.KeepSnapshots)

	ctx := context.Background()
	if last, ok, err := store.GetMeta(ctx, "last_started_at"); err == nil && ok {
		slog.Info("previous run", "started_at", last)
	}
	if err := store.SetMeta(ctx, "last_started_at", time.Now().UTC().Format(time.RFC3339)); err != nil {
		slog.Warn("failed to record start time", "error", err)
	}

	cat := catalog.Default()
	if cfg.Game.AirportsCSV != "" {
		airports, err := catalog.LoadAirportsCSV(cfg.Game.AirportsCSV)
		if err != nil {
			slog.Error("failed to load airports", "path", cfg.Game.AirportsCSV, "error", err)
			os.Exit(1)
		}
		cat.Airports = airports
		slog.Info("loaded airports", "count", len(airports))
	}

	engine := game.NewEngine(cat, game.NewRandom(cfg.Game.Seed), store, cfg.Storage.AutosaveDays)
	if found, err := engine.Load(ctx); err != nil {
		slog.Error("failed to load savegame", "error", err)
		os.Exit(1)
	} else if found {
		slog.Info("loaded savegame", "session", engine.SessionID())
	} else {
		slog.Info("starting a new game", "session", engine.SessionID())
	}
	if cfg.Game.DefaultSpeed > 0 {
		if err := engine.StartSim(cfg.Game.DefaultSpeed); err != nil {
			slog.Warn("failed to start simulation", "error", err)
		}
	}

	apiCtx, stopAPI := context.WithCancel(ctx)
	defer stopAPI()
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      api.New(apiCtx, engine, *cfg),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		slog.Info("server listening", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	slog.Info("received signal, shutting down", "signal", sig)

	engine.Stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}

	// final save
	if err := engine.Save(shutdownCtx); err != nil {
		slog.Error("final save failed", "error", err)
	}
}
