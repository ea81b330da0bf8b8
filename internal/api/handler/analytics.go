package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jasonco/storefront-analytics/internal/config"
	"github.com/jasonco/storefront-analytics/internal/domain"
	"github.com/jasonco/storefront-analytics/internal/usecases/analyzing"
	"github.com/jasonco/storefront-analytics/pkg/apiErrors"
	"github.com/jasonco/storefront-analytics/pkg/log"
)

// now is the clock used to resolve relative periods
var now = time.Now

// periodFromRequest resolves the requested window. Bad values never fail the request, they fall
// back to the default period.
func periodFromRequest(r *http.Request, tokenParams ...string) domain.Period {
	query := r.URL.Query()

	var token string
	for _, param := range tokenParams {
		if value := strings.TrimSpace(query.Get(param)); value != "" {
			token = value
			break
		}
	}

	return domain.ResolvePeriod(token, query.Get("start"), query.Get("end"), now())
}

func parseBool(value string) bool {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	return err == nil && parsed
}

// parseLimit returns fallback for missing or non positive values and caps the rest at max.
func parseLimit(value string, fallback, max int) int {
	limit, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || limit <= 0 {
		return fallback
	}
	if max > 0 && limit > max {
		return max
	}
	return limit
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Error writing response")
	}
}

func writeAnalyticsError(w http.ResponseWriter, r *http.Request, report string, err error) {
	log.ForContext(r.Context()).WithError(err).WithField("report", report).Error("Error building analytics report")
	apiErrors.WriteInternalError(w, apiErrors.ErrDatabaseOperation)
}

// GetRevenueAnalytics serves the revenue time series, headline metrics and category split
func GetRevenueAnalytics(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		report, err := service.Revenue(r.Context(), analyzing.RevenueQuery{
			Period:      periodFromRequest(r, "period", "timeRange"),
			Granularity: domain.ParseGranularity(query.Get("groupBy")),
			Comparison:  parseBool(query.Get("comparison")),
		})
		if err != nil {
			writeAnalyticsError(w, r, "revenue", err)
			return
		}

		writeJSON(w, r, report)
	}
}

// GetProductAnalytics serves the product leaderboard and catalog metrics
func GetProductAnalytics(service analyzing.Analyzer, cfg config.Analytics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		report, err := service.Products(r.Context(), analyzing.ProductQuery{
			Period: periodFromRequest(r, "timeRange", "period"),
			SortBy: domain.ParseProductSort(query.Get("sortBy")),
			Limit:  parseLimit(query.Get("limit"), cfg.TopProductsLimit, cfg.MaxTopProductsLimit),
		})
		if err != nil {
			writeAnalyticsError(w, r, "product", err)
			return
		}

		writeJSON(w, r, report)
	}
}

func GetGeographicAnalytics(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		regions, err := service.Geographic(r.Context(), periodFromRequest(r, "timeRange", "period"))
		if err != nil {
			writeAnalyticsError(w, r, "geographic", err)
			return
		}

		writeJSON(w, r, regions)
	}
}

func GetCustomerAnalytics(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.Customers(r.Context(), periodFromRequest(r, "timeRange", "period"))
		if err != nil {
			writeAnalyticsError(w, r, "customer", err)
			return
		}

		writeJSON(w, r, report)
	}
}
