package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/vicholitvak/moai-search/internal/models"
)

const (
	dishesCacheKey = "catalog:dishes"
	cooksCacheKey  = "catalog:cooks"
)

// CachedCatalog wraps another CatalogAccess with a redis TTL cache. Cache
// failures fall through to the inner catalog: correctness never depends on
// the cache being reachable.
type CachedCatalog struct {
	inner  CatalogAccess
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewCachedCatalog(inner CatalogAccess, client *redis.Client, ttl time.Duration, log *zap.Logger) *CachedCatalog {
	if log == nil {
		log = zap.NewNop()
	}
	return &CachedCatalog{inner: inner, client: client, ttl: ttl, log: log}
}

func (c *CachedCatalog) GetAllDishes(ctx context.Context) ([]models.Dish, error) {
	var dishes []models.Dish
	if c.readCached(ctx, dishesCacheKey, &dishes) {
		return dishes, nil
	}
	dishes, err := c.inner.GetAllDishes(ctx)
	if err != nil {
		return nil, err
	}
	c.writeCached(ctx, dishesCacheKey, dishes)
	return dishes, nil
}

func (c *CachedCatalog) GetAllCooks(ctx context.Context) ([]models.Cook, error) {
	var cooks []models.Cook
	if c.readCached(ctx, cooksCacheKey, &cooks) {
		return cooks, nil
	}
	cooks, err := c.inner.GetAllCooks(ctx)
	if err != nil {
		return nil, err
	}
	c.writeCached(ctx, cooksCacheKey, cooks)
	return cooks, nil
}

func (c *CachedCatalog) readCached(ctx context.Context, key string, dest interface{}) bool {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("catalog cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		c.log.Warn("catalog cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *CachedCatalog) writeCached(ctx context.Context, key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warn("catalog cache write failed", zap.String("key", key), zap.Error(err))
	}
}
