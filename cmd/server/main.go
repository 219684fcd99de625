package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gamecatalog/backend/internal/catalog"
	"gamecatalog/backend/internal/config"
	"gamecatalog/backend/internal/database"
	"gamecatalog/backend/internal/handler"
	"gamecatalog/backend/internal/hub"
	"gamecatalog/backend/internal/logger"
	"gamecatalog/backend/internal/metrics"
	"gamecatalog/backend/internal/middleware"
	"gamecatalog/backend/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// @title           Games Catalog API
// @version         1.0
// @description     CRUD API for the games catalog.
// @host            localhost:3000
// @BasePath        /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	if cfg.ConfigFile == "" {
		appLog.Warn(".env file not found, loading from environment variables")
	}

	gin.SetMode(cfg.GinMode)

	events := hub.New(cfg.EventBuffer)
	db := database.NewMemoryDB()
	service := catalog.NewService(db, catalog.NewSequence(cfg.IDStart),
		catalog.WithPublisher(events),
		catalog.WithLogger(appLog.WithField("component", "catalog")),
	)
	if cfg.SeedSampleGames {
		if err := service.Seed(catalog.SampleGames()); err != nil {
			appLog.WithError(err).Fatal("failed to seed catalog")
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)
	metrics.RegisterCollectionSize(registry, service.Count)

	var limiter *middleware.RateLimiter
	if cfg.RateLimitRPS > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	router := handler.NewRouter(handler.RouterConfig{
		Games:       service,
		Hub:         events,
		Logger:      appLog.WithField("component", "http"),
		Metrics:     appMetrics,
		Gatherer:    registry,
		RateLimiter: limiter,
		CORSOrigins: cfg.CORSAllowedOrigins,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appLog.WithField("games", service.Count()).Infof("Backend running on http://%s", cfg.Addr())
	srv := server.New(cfg.Addr(), router, cfg.ShutdownTimeout, appLog.WithField("component", "server"))
	if err := srv.Run(ctx); err != nil {
		appLog.WithError(err).Fatal("server stopped")
	}
}
