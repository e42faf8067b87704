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

	"github.com/xtding233/relic-gacha/internal/config"
	"github.com/xtding233/relic-gacha/internal/game"
	"github.com/xtding233/relic-gacha/internal/gacha"
	"github.com/xtding233/relic-gacha/internal/logger"
	"github.com/xtding233/relic-gacha/internal/server"
	"github.com/xtding233/relic-gacha/internal/session"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.Environment))

	// a bad catalog or rate table stops startup here
	loader := game.NewLoader(cfg.ConfigDir)
	raw, err := loader.LoadMerged(cfg.Game, "")
	if err != nil {
		return err
	}
	bundle, err := game.Build(raw)
	if err != nil {
		return err
	}
	if cfg.Pool != "" {
		if _, err := loader.Resolve(cfg.Game, cfg.Pool, game.Overrides{}); err != nil {
			return err
		}
	}

	rng := gacha.DefaultRNG()
	if cfg.RNGSeed != 0 {
		rng = gacha.NewLockedRNG(gacha.NewSeededRNG(cfg.RNGSeed))
		slog.Warn("Using a seeded random source; rolls are reproducible", "seed", cfg.RNGSeed)
	}
	engine, err := gacha.NewEngine(bundle.Catalog, bundle.Rates, rng)
	if err != nil {
		return err
	}
	events, err := gacha.NewEventPool(bundle.Catalog)
	if err != nil {
		if !errors.Is(err, gacha.ErrEmptyEventPool) {
			return err
		}
		slog.Info("No event items in catalog; event draws disabled")
		events = nil
	}
	store := session.NewStore(engine, session.Options{Size: cfg.SessionCacheSize, TTL: cfg.SessionTTL})

	slog.Info("Catalog loaded",
		"game", cfg.Game,
		"version", bundle.Version,
		"items", bundle.Catalog.Len(),
		"default_pool", cfg.Pool)

	srv := server.NewServer(cfg.Port, server.Deps{
		Engine:      engine,
		Store:       store,
		Events:      events,
		Pools:       loader,
		Game:        cfg.Game,
		DefaultPool: cfg.Pool,
		RNG:         rng,
	})

	var health *server.HealthServer
	if cfg.GRPCPort != 0 {
		if health, err = server.NewHealthServer(cfg.GRPCPort); err != nil {
			return err
		}
		go func() {
			if err := health.Serve(); err != nil {
				slog.Error("gRPC health server stopped", "error", err)
			}
		}()
		health.SetServing(true)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down")
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if health != nil {
		health.SetServing(false)
		health.Stop()
	}
	return srv.Stop(shutdownCtx)
}
