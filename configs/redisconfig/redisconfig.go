package redisconfig

import (
	"context"
	"time"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/envconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/logconfig"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var client *redis.Client

// InitRedis connects the cache client. Redis is optional: if the server is
// unreachable the app runs without the district-tree cache.
func InitRedis() {
	client = redis.NewClient(&redis.Options{
		Addr:     envconfig.String("REDIS_ADDR", "127.0.0.1:6379"),
		Password: envconfig.String("REDIS_PASSWORD", ""),
		DB:       envconfig.Int("REDIS_DB", 0),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logconfig.Log.Warn("Redis unreachable, caching disabled", zap.Error(err))
		client = nil
		return
	}

	logconfig.SLog.Infow("Redis connected", "addr", envconfig.String("REDIS_ADDR", "127.0.0.1:6379"))
}

// GetClient returns nil when caching is disabled; callers must tolerate that.
func GetClient() *redis.Client {
	return client
}

func CloseRedis() {
	if client != nil {
		_ = client.Close()
	}
}
