package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/myflixlabs/myflix-backend/api/routes"
	"github.com/myflixlabs/myflix-backend/internal/analytics"
	"github.com/myflixlabs/myflix-backend/internal/auth"
	"github.com/myflixlabs/myflix-backend/internal/catalog"
	"github.com/myflixlabs/myflix-backend/internal/identity"
	"github.com/myflixlabs/myflix-backend/internal/notifications"
	"github.com/myflixlabs/myflix-backend/internal/player"
	"github.com/myflixlabs/myflix-backend/internal/poll"
	"github.com/myflixlabs/myflix-backend/internal/settings"
	"github.com/myflixlabs/myflix-backend/pkg/auth/session"
	"github.com/myflixlabs/myflix-backend/pkg/config"
	"github.com/myflixlabs/myflix-backend/pkg/db"
	"github.com/myflixlabs/myflix-backend/pkg/kvstore"
	"github.com/myflixlabs/myflix-backend/pkg/logger"
	"github.com/myflixlabs/myflix-backend/pkg/metrics"
	"github.com/myflixlabs/myflix-backend/pkg/migrate"
)

const shutdownGrace = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	kv := kvstore.New(dbClient)

	sessionManager, err := session.NewManager(kv)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	catalogRepo := catalog.NewRepository(kv)
	identityRepo := identity.NewRepository(kv)
	settingsRepo := settings.NewRepository(kv)
	notificationsRepo := notifications.NewRepository(kv)

	catalogService, err := catalog.NewService(catalogRepo, cfg.Sim)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}
	identityService, err := identity.NewService(identityRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create identity service", err)
		os.Exit(1)
	}
	settingsService, err := settings.NewService(settingsRepo, cfg.Sim)
	if err != nil {
		logg.Error(context.Background(), "failed to create settings service", err)
		os.Exit(1)
	}
	notificationsService, err := notifications.NewService(notificationsRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create notification service", err)
		os.Exit(1)
	}
	authService, err := auth.NewService(identityRepo, sessionManager, cfg.JWT, cfg.Sim)
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}
	playerManager, err := player.NewManager(settingsService)
	if err != nil {
		logg.Error(context.Background(), "failed to create player manager", err)
		os.Exit(1)
	}
	analyticsService, err := analytics.NewService(catalogRepo, identityRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create analytics service", err)
		os.Exit(1)
	}

	pollMetrics := metrics.NewPollJobMetrics(prometheus.DefaultRegisterer)
	refreshJob, err := notifications.NewRefreshJob(notificationsService, sessionManager, pollMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create notification refresh job", err)
		os.Exit(1)
	}

	registry := poll.NewRegistry()
	registry.Register(refreshJob)

	pollService, err := poll.NewService(poll.ServiceParams{
		Logger:   logg,
		Registry: registry,
		Lock:     poll.NewLocalLock(),
		Metrics:  pollMetrics,
		Interval: cfg.Poll.NotificationsInterval,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create poll service", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pollDone := make(chan error, 1)
	go func() {
		pollDone <- pollService.Run(ctx)
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx = logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:        cfg,
			Logger:        logg,
			DB:            dbClient,
			Sessions:      sessionManager,
			Auth:          authService,
			Catalog:       catalogService,
			Identity:      identityService,
			Settings:      settingsService,
			Notifications: notificationsService,
			Player:        playerManager,
			Analytics:     analyticsService,
			Metrics:       prometheus.DefaultGatherer,
		}),
	}

	serverDone := make(chan error, 1)
	go func() {
		serverDone <- server.ListenAndServe()
	}()

	select {
	case err := <-serverDone:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-ctx.Done():
	}

	logg.Info(ctx, "shutting down")
	playerManager.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	var shutdownErr error
	if err := server.Shutdown(shutdownCtx); err != nil {
		shutdownErr = multierr.Append(shutdownErr, err)
	}
	if err := <-pollDone; err != nil && !errors.Is(err, context.Canceled) {
		shutdownErr = multierr.Append(shutdownErr, err)
	}
	if shutdownErr != nil {
		logg.Error(ctx, "shutdown finished with errors", shutdownErr)
		os.Exit(1)
	}

	logg.Info(ctx, "shutdown complete")
}
