package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"stockroom/internal/domain/model"
	"stockroom/internal/platform/config"

	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client

func Connect() {
	RDB = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})

	ctx := context.Background()
	if _, err := RDB.Ping(ctx).Result(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
}

func Close() {
	if RDB != nil {
		RDB.Close()
	}
}

const itemListKey = "items:all"

// ItemCache is a read-through cache for the full item collection. Misses and
// redis failures both fall back to the repository; a stale entry can only
// outlive a mutation by the TTL if invalidation fails.
type ItemCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewItemCache(rdb *redis.Client, ttl time.Duration) *ItemCache {
	return &ItemCache{rdb: rdb, ttl: ttl}
}

func (c *ItemCache) GetList(ctx context.Context) ([]model.Item, bool) {
	data, err := c.rdb.Get(ctx, itemListKey).Bytes()
	if err != nil {
		return nil, false
	}
	var items []model.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false
	}
	return items, true
}

func (c *ItemCache) SetList(ctx context.Context, items []model.Item) {
	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, itemListKey, data, c.ttl).Err(); err != nil {
		log.Printf("item cache set failed: %v", err)
	}
}

func (c *ItemCache) Invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, itemListKey).Err(); err != nil {
		log.Printf("item cache invalidation failed: %v", err)
	}
}
