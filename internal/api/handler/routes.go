package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/jasonco/storefront-analytics/internal/api/handler/router"
	"github.com/jasonco/storefront-analytics/internal/config"
	"github.com/jasonco/storefront-analytics/internal/usecases/analyzing"
	"github.com/jasonco/storefront-analytics/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck(checks ...HealthCheck) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(checks...),
		},
	}
}

func Analytics(service analyzing.Analyzer, cfg *config.Config) []router.Route {
	access := []func(http.Handler) http.Handler{middleware.DashboardAccess(cfg.Auth.RequireAdmin)}

	return []router.Route{
		{
			Path:        "/analytics/revenue",
			Method:      http.MethodGet,
			Handler:     GetRevenueAnalytics(service),
			Middlewares: access,
		},
		{
			Path:        "/analytics/product",
			Method:      http.MethodGet,
			Handler:     GetProductAnalytics(service, cfg.Analytics),
			Middlewares: access,
		},
		{
			Path:        "/analytics/geographic",
			Method:      http.MethodGet,
			Handler:     GetGeographicAnalytics(service),
			Middlewares: access,
		},
		{
			Path:        "/analytics/customer",
			Method:      http.MethodGet,
			Handler:     GetCustomerAnalytics(service),
			Middlewares: access,
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
