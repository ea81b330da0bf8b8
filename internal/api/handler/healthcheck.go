package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/jasonco/storefront-analytics/pkg/log"
)

const healthcheckTimeout = 2 * time.Second

// HealthCheck probes one dependency
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type healthcheckResponse struct {
	Status string            `json:"status"`
	Time   time.Time         `json:"time"`
	Checks map[string]string `json:"checks,omitempty"`
}

func HealthcheckHandler(checks ...HealthCheck) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
		defer cancel()

		response := healthcheckResponse{Status: "ok", Time: now().UTC()}
		status := http.StatusOK

		if len(checks) > 0 {
			response.Checks = make(map[string]string, len(checks))
		}
		for _, check := range checks {
			if err := check.Check(ctx); err != nil {
				log.ForContext(r.Context()).WithError(err).WithField("dependency", check.Name).Warn("Healthcheck failed")
				response.Checks[check.Name] = "unavailable"
				response.Status = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			response.Checks[check.Name] = "ok"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if err := json.NewEncoder(w).Encode(response); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("error responding to healthcheck")
		}
	})
}
