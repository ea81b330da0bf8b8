package cache

import (
	"context"
	"time"

	"github.com/jasonco/storefront-analytics/internal/config"
)

//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks

// Cache stores serialized responses. A miss is reported by ok=false, never by an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Ping(ctx context.Context) error
	Close() error
}

// New returns a Redis backed cache, or a no-op cache when no address is configured.
func New(ctx context.Context, cfg config.Cache) (Cache, error) {
	if cfg.RedisAddr == "" {
		return NopCache{}, nil
	}

	return NewRedisCache(ctx, cfg)
}

type NopCache struct{}

func (NopCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

func (NopCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

func (NopCache) Ping(context.Context) error {
	return nil
}

func (NopCache) Close() error {
	return nil
}
