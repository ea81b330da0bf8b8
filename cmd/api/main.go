package main

import (
	"context"
	"time"

	"github.com/jasonco/storefront-analytics/infrastructure/cache"
	"github.com/jasonco/storefront-analytics/infrastructure/database/postgres"
	"github.com/jasonco/storefront-analytics/infrastructure/repository"
	"github.com/jasonco/storefront-analytics/internal/api"
	"github.com/jasonco/storefront-analytics/internal/api/handler"
	"github.com/jasonco/storefront-analytics/internal/config"
	"github.com/jasonco/storefront-analytics/internal/scheduler"
	"github.com/jasonco/storefront-analytics/internal/usecases/analyzing"
	"github.com/jasonco/storefront-analytics/internal/usecases/authenticating"
	"github.com/jasonco/storefront-analytics/pkg/log"
)

const startupTimeout = 10 * time.Second

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel, !cfg.IsProduction())
	log.L.WithField("level", cfg.App.LogLevel).Info("Logger configured")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.AutoMigrate {
		applied, err := postgres.Migrate(pgConn.DB)
		if err != nil {
			log.L.WithError(err).Fatal("Error applying migrations")
		}
		log.L.WithField("applied", applied).Info("Migrations applied")
	}

	responseCache := newCache(ctx, cfg.Cache)
	defer responseCache.Close()

	analyticsRepo := repository.NewAnalyticsRepository(pgConn)
	analyticsService := analyzing.NewService(analyticsRepo, cfg.Analytics)
	cachedAnalyzer := analyzing.NewCachedAnalyzer(analyticsService, responseCache, cfg.Cache.TTL)

	if cfg.Auth.Secret == "" {
		log.L.Warn("AUTH_SECRET is empty, every analytics request will be rejected")
	}
	authenticator := authenticating.NewService(cfg.Auth)

	cacheWarmer := scheduler.NewCacheWarmerService(cachedAnalyzer, cfg)
	if err := cacheWarmer.Start(ctx); err != nil {
		log.L.WithError(err).Error("Error starting cache warmer")
	}

	server, err := api.New(
		cfg,
		cachedAnalyzer,
		authenticator,
		cacheWarmer,
		handler.HealthCheck{Name: "postgres", Check: pgConn.Ping},
		handler.HealthCheck{Name: "cache", Check: responseCache.Ping},
	)
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	ctx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Fatal("Error connecting to PostgreSQL")
	}

	log.L.Info("PostgreSQL connection established")
	return conn
}

// newCache falls back to running without a cache when Redis is unreachable at startup.
func newCache(ctx context.Context, cacheConfig config.Cache) cache.Cache {
	ctx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	c, err := cache.New(ctx, cacheConfig)
	if err != nil {
		log.L.WithError(err).Warn("Response cache unavailable, serving uncached")
		return cache.NopCache{}
	}

	return c
}
