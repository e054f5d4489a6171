package deps

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/kurobbs/core/core/score"
)

var (
	// RedisURL cache address.
	RedisURL string
)

func IgniteCache(container Deps) (Deps, error) {
	client := redis.NewClient(&redis.Options{Addr: RedisURL})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return container, err
	}

	container.CacheProvider = client
	container.ScoreCacheProvider = score.NewRedisCache(client)
	return container, nil
}
