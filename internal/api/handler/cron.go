package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/jasonco/storefront-analytics/internal/scheduler"
	"github.com/jasonco/storefront-analytics/pkg/apiErrors"
	"github.com/jasonco/storefront-analytics/pkg/log"
)

// CronJobServices holds the jobs that can be triggered by hand
type CronJobServices struct {
	CacheWarmer *scheduler.CacheWarmerService
}

// RunCronJob starts a job in the background and returns immediately
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		logger := log.ForContext(r.Context()).WithField("type", cronType)

		switch cronType {
		case scheduler.JobCacheWarm:
			if services.CacheWarmer == nil {
				logger.Error("Cache warmer not configured")
				apiErrors.WriteError(w, apiErrors.ErrUnavailable, "Cache warmer not available", nil)
				return
			}
			services.CacheWarmer.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid cron job type. Accepted values: "+scheduler.JobCacheWarm, nil)
			return
		}

		logger.Info("Cron job triggered")
		writeJSON(w, r, map[string]any{
			"message": "Cron job started",
			"type":    cronType,
		})
	}
}

func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.CacheWarmer != nil {
			status[scheduler.JobCacheWarm] = services.CacheWarmer.GetStatus()
		}

		writeJSON(w, r, status)
	}
}
