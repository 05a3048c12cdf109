package bootstrap

import (
	"context"
	"log/slog"

	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/infra/cache"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/config"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/usecase/commands"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewQuoteCache,
	),
)

// NewRedisClient returns nil when redis is disabled; the cache ports degrade
// to permanent misses and no-op invalidation.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	if !cfg.Redis.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}

func NewQuoteCache(client *redis.Client, cfg config.Config, logger *slog.Logger) (queries.PriceQuoteCache, commands.QuoteCacheInvalidator) {
	if client == nil {
		return nil, nil
	}
	c := cache.NewPriceQuoteCache(client, cfg.Redis.QuoteTTL, logger)
	return c, c
}
