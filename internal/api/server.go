package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"

	"github.com/jasonco/storefront-analytics/internal/api/handler"
	"github.com/jasonco/storefront-analytics/internal/api/handler/router"
	"github.com/jasonco/storefront-analytics/internal/config"
	"github.com/jasonco/storefront-analytics/internal/scheduler"
	"github.com/jasonco/storefront-analytics/internal/usecases/analyzing"
	"github.com/jasonco/storefront-analytics/internal/usecases/authenticating"
	"github.com/jasonco/storefront-analytics/pkg/log"
	"github.com/jasonco/storefront-analytics/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	analyzer analyzing.Analyzer,
	authenticator authenticating.Authenticator,
	cacheWarmer *scheduler.CacheWarmerService,
	healthChecks ...handler.HealthCheck,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(healthChecks...)...),
		router.WithRoutes(handler.Analytics(analyzer, config)...),
		router.WithRoutes(handler.CronJobs(handler.CronJobServices{CacheWarmer: cacheWarmer})...),
	)

	log.L.WithField("routes", rt.Routes()).Debug("Routes registered")

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
		middleware.Timeout(config.Server.RequestTimeout),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("Server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("Server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("Interrupt signal received")
	case <-ctx.Done():
		log.L.Info("Application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.WithField("timeout", shutdownTimeout.String()).Info("Starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Error during server shutdown")
		return err
	}

	log.L.Info("Server shut down")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
