package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/domain/pricing"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const versionKey = "quote:version"

// PriceQuoteCache caches price quotes in redis keyed by the request params
// and a global version counter. Invalidation bumps the counter, which orphans
// every existing entry; orphans simply expire via TTL.
type PriceQuoteCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewPriceQuoteCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *PriceQuoteCache {
	return &PriceQuoteCache{client: client, ttl: ttl, logger: logger}
}

func (c *PriceQuoteCache) Get(ctx context.Context, params queries.QuoteParams) (*pricing.Quote, bool) {
	key, err := c.key(ctx, params)
	if err != nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("quote cache read failed", "error", err)
		}
		return nil, false
	}
	var quote pricing.Quote
	if err := json.Unmarshal(payload, &quote); err != nil {
		c.logger.Warn("quote cache entry corrupted", "key", key, "error", err)
		return nil, false
	}
	return &quote, true
}

func (c *PriceQuoteCache) Set(ctx context.Context, params queries.QuoteParams, quote *pricing.Quote) {
	key, err := c.key(ctx, params)
	if err != nil {
		return
	}
	payload, err := json.Marshal(quote)
	if err != nil {
		c.logger.Warn("quote cache marshal failed", "error", err)
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("quote cache write failed", "error", err)
	}
}

// Invalidate bumps the global version. Called after every rule-data write.
func (c *PriceQuoteCache) Invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		c.logger.Warn("quote cache invalidation failed", "error", err)
	}
}

func (c *PriceQuoteCache) key(ctx context.Context, params queries.QuoteParams) (string, error) {
	version, err := c.client.Get(ctx, versionKey).Int64()
	if err != nil && err != redis.Nil {
		return "", err
	}
	raw, err := json.Marshal(params)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return fmt.Sprintf("quote:price:v%d:%s", version, hex.EncodeToString(sum[:16])), nil
}
