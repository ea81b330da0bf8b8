// Package scheduler runs the background jobs of the analytics service
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/jasonco/storefront-analytics/internal/config"
	"github.com/jasonco/storefront-analytics/internal/domain"
	"github.com/jasonco/storefront-analytics/internal/usecases/analyzing"
	"github.com/jasonco/storefront-analytics/pkg/log"
	"github.com/jasonco/storefront-analytics/pkg/utils"
)

const JobCacheWarm = "cache-warm"

type CacheWarmerConfig struct {
	CronSchedule string
	Enabled      bool
	// same default limit as the product handler
	ProductLimit int
}

// CacheWarmerService precomputes the dashboard reports for every standard period so that the
// first visitor after a cache expiry does not wait on the database.
type CacheWarmerService struct {
	scheduler *gocron.Scheduler
	analyzer  analyzing.Analyzer
	config    CacheWarmerConfig
	now       func() time.Time

	syncRunning         bool
	syncMutex           sync.Mutex
	lastRunID           string
	lastError           string
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewCacheWarmerService(analyzer analyzing.Analyzer, cfg *config.Config) *CacheWarmerService {
	warmConfig := CacheWarmerConfig{
		CronSchedule: cfg.CacheWarm.CronSchedule,
		Enabled:      cfg.CacheWarm.Enabled,
		ProductLimit: cfg.Analytics.TopProductsLimit,
	}

	log.L.WithField("cron_schedule", warmConfig.CronSchedule).Info("Cache warmer configuration loaded")

	return &CacheWarmerService{
		scheduler: gocron.NewScheduler(time.UTC),
		analyzer:  analyzer,
		config:    warmConfig,
		now:       time.Now,
	}
}

func (s *CacheWarmerService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("Cache warmer disabled by configuration")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("Starting cache warmer")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.Warm(ctx); err != nil {
			log.L.WithError(err).Error("Cache warm failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule cache warmer: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Stopping cache warmer")
		s.scheduler.Stop()
	}()

	return nil
}

// Warm computes every report for the standard periods. A failing report does not stop the
// others; all failures are returned together.
func (s *CacheWarmerService) Warm(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Warn("Cache warm already running")
		return nil
	}

	runID, err := utils.GenerateID()
	if err != nil {
		s.syncMutex.Unlock()
		return fmt.Errorf("failed to generate run id: %w", err)
	}

	s.syncRunning = true
	s.lastRunID = runID
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	logger := log.L.WithField("run_id", runID)
	logger.Info("Cache warm started")

	now := s.now()
	var errs []error
	for _, token := range domain.StandardPeriods {
		period := domain.ResolvePeriod(token, "", "", now)
		if err := s.warmPeriod(ctx, period); err != nil {
			errs = append(errs, fmt.Errorf("period %s: %w", token, err))
		}
	}
	warmErr := errors.Join(errs...)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastError = ""
	if warmErr != nil {
		s.lastError = warmErr.Error()
	}
	s.syncMutex.Unlock()

	if warmErr != nil {
		logger.WithError(warmErr).Warn("Cache warm finished with errors")
		return warmErr
	}

	logger.Info("Cache warm finished")
	return nil
}

func (s *CacheWarmerService) warmPeriod(ctx context.Context, period domain.Period) error {
	var errs []error

	if _, err := s.analyzer.Revenue(ctx, analyzing.RevenueQuery{Period: period, Granularity: domain.GranularityDay}); err != nil {
		errs = append(errs, err)
	}
	if _, err := s.analyzer.Revenue(ctx, analyzing.RevenueQuery{Period: period, Granularity: domain.GranularityDay, Comparison: true}); err != nil {
		errs = append(errs, err)
	}
	if _, err := s.analyzer.Products(ctx, analyzing.ProductQuery{Period: period, SortBy: domain.ProductSortRevenue, Limit: s.config.ProductLimit}); err != nil {
		errs = append(errs, err)
	}
	if _, err := s.analyzer.Geographic(ctx, period); err != nil {
		errs = append(errs, err)
	}
	if _, err := s.analyzer.Customers(ctx, period); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// TriggerManualSync starts a warm run in the background
func (s *CacheWarmerService) TriggerManualSync() {
	go func() {
		if err := s.Warm(context.Background()); err != nil {
			log.L.WithError(err).Error("Manual cache warm failed")
		}
	}()
}

func (s *CacheWarmerService) GetStatus() map[string]interface{} {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]interface{}{
		"enabled":                s.config.Enabled,
		"cron_schedule":          s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_run_id":            s.lastRunID,
		"last_error":             s.lastError,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
