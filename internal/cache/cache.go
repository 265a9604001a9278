package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"learnhub/be/internal/resource"
)

const defaultTTL = 24 * time.Hour

// RedisCache memoizes search results keyed by (query, category). Keys are
// upserted with a TTL, so repeated searches replace the entry instead of
// accumulating rows.
type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCache(addr string, ttl time.Duration) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("warn: redis ping failed: %v", err)
	}

	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisCache{rdb: rdb, ttl: ttl}
}

// searchKey separates the category slot so an "all categories" entry (empty
// category) never collides with a single-category one.
func searchKey(query string, category resource.Category) string {
	return fmt.Sprintf("search:%s:%s", category, query)
}

func (c *RedisCache) Get(ctx context.Context, query string, category resource.Category) ([]resource.Resource, bool) {
	bs, err := c.rdb.Get(ctx, searchKey(query, category)).Bytes()
	if err != nil {
		return nil, false
	}
	var cached []resource.Resource
	if err := json.Unmarshal(bs, &cached); err != nil {
		return nil, false
	}
	return cached, true
}

func (c *RedisCache) Put(ctx context.Context, query string, category resource.Category, results []resource.Resource) error {
	bs, err := json.Marshal(results)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, searchKey(query, category), bs, c.ttl).Err()
}
