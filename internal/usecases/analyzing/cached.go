package analyzing

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/jasonco/storefront-analytics/infrastructure/cache"
	"github.com/jasonco/storefront-analytics/internal/domain"
	"github.com/jasonco/storefront-analytics/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CachedAnalyzer serves reports from the response cache and fills it on a miss. Cache failures
// are logged and the report is computed from the store instead.
type CachedAnalyzer struct {
	next  Analyzer
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedAnalyzer(next Analyzer, c cache.Cache, ttl time.Duration) *CachedAnalyzer {
	return &CachedAnalyzer{
		next:  next,
		cache: c,
		ttl:   ttl,
	}
}

func (c *CachedAnalyzer) Revenue(ctx context.Context, query RevenueQuery) (*domain.RevenueReport, error) {
	key := cacheKey("revenue", query.Period, string(query.Granularity), fmt.Sprintf("comparison=%t", query.Comparison))
	return cached(ctx, c, key, func() (*domain.RevenueReport, error) {
		return c.next.Revenue(ctx, query)
	})
}

func (c *CachedAnalyzer) Products(ctx context.Context, query ProductQuery) (*domain.ProductReport, error) {
	key := cacheKey("product", query.Period, string(query.SortBy), fmt.Sprintf("limit=%d", query.Limit))
	return cached(ctx, c, key, func() (*domain.ProductReport, error) {
		return c.next.Products(ctx, query)
	})
}

func (c *CachedAnalyzer) Geographic(ctx context.Context, period domain.Period) ([]domain.RegionReport, error) {
	return cached(ctx, c, cacheKey("geographic", period), func() ([]domain.RegionReport, error) {
		return c.next.Geographic(ctx, period)
	})
}

func (c *CachedAnalyzer) Customers(ctx context.Context, period domain.Period) (*domain.CustomerReport, error) {
	return cached(ctx, c, cacheKey("customer", period), func() (*domain.CustomerReport, error) {
		return c.next.Customers(ctx, period)
	})
}

func cacheKey(endpoint string, period domain.Period, params ...string) string {
	key := fmt.Sprintf("analytics:%s:%s:%s:%s",
		endpoint,
		period.Label,
		period.StartDate.Format(time.RFC3339Nano),
		period.EndDate.Format(time.RFC3339Nano),
	)
	for _, p := range params {
		key += ":" + p
	}
	return key
}

func cached[T any](ctx context.Context, c *CachedAnalyzer, key string, compute func() (T, error)) (T, error) {
	logger := log.ForContext(ctx).WithField("cache_key", key)

	if raw, ok, err := c.cache.Get(ctx, key); err != nil {
		logger.WithError(err).Warn("Cache read failed")
	} else if ok {
		var hit T
		if err := json.Unmarshal(raw, &hit); err == nil {
			return hit, nil
		}
		logger.Warn("Discarding unreadable cache entry")
	}

	result, err := compute()
	if err != nil {
		return result, err
	}

	raw, err := json.Marshal(result)
	if err != nil {
		logger.WithError(err).Warn("Cache encode failed")
		return result, nil
	}

	if err := c.cache.Set(ctx, key, raw, c.ttl); err != nil {
		logger.WithError(err).Warn("Cache write failed")
	}

	return result, nil
}
