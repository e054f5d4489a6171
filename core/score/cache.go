package score

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache memoizes reporter credibility; redis in production, a map
// fake in tests.
type Cache interface {
	GetFloat(key string) (float64, bool)
	SetFloat(key string, value float64, ttl time.Duration)
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client}
}

type RedisCache struct {
	client *redis.Client
}

func (c *RedisCache) GetFloat(key string) (float64, bool) {
	v, err := c.client.Get(context.Background(), key).Float64()
	if err != nil {
		return 0, false
	}
	return v, true
}

func (c *RedisCache) SetFloat(key string, value float64, ttl time.Duration) {
	c.client.Set(context.Background(), key, value, ttl)
}
