package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/api"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/assets"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/config"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/dashboard"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/logger"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/repository/sqlite"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/services"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/store"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		os.Stderr.WriteString("invalid configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("Lineup Archetypes Dashboard Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("data_dir=%s", cfg.DataDir)
	log.Debug("assets_dir=%s", cfg.AssetsDir)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("session_ttl_mins=%d", cfg.SessionTTLMins)

	// Load the CSV tables into SQLite. Any load failure is fatal: the
	// dashboard is useless without its data.
	st, err := store.Open(cfg.DataDir, cfg.DBPath)
	if err != nil {
		log.Error("failed to load data: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing data store")
		st.Close()
	}()

	playerRepo := sqlite.NewPlayerRepository(st.DB)
	shotRepo := sqlite.NewShotRepository(st.DB)
	lineupRepo := sqlite.NewLineupRepository(st.DB)

	svc := services.NewDashboardService(playerRepo, shotRepo, lineupRepo)

	// Pick the default player for new sessions: first row of the player
	// table, matching the selector's initial value.
	ctx := context.Background()
	players, err := svc.Players(ctx)
	if err != nil || len(players) == 0 {
		log.Error("no players available: %v", err)
		os.Exit(1)
	}
	defaultPlayer := players[0].Name
	log.Info("loaded %d players, default is %s", len(players), defaultPlayer)

	sessions := dashboard.NewSessionStore(func(ctx context.Context) (*dashboard.Controller, error) {
		return dashboard.NewController(ctx, svc, defaultPlayer)
	}, time.Duration(cfg.SessionTTLMins)*time.Minute)

	resolver := assets.NewResolver(cfg.AssetsDir, cfg.PlaceholderAsset)

	srv := api.NewServer(svc, sessions, resolver)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("Lineup Archetypes Dashboard Stopped")
	log.Info("===========================================")
}
