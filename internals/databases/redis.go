package database

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"steam_backend/internals/configs"
)

// Redis stays nil when REDIS_ADDR is empty; token revocation is then disabled.
var Redis *goredis.Client

func ConnectRedis() error {
	if configs.RedisAddr == "" {
		configs.Log.Warn("REDIS_ADDR not set, token blacklist disabled")
		return nil
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPass,
		DB:       configs.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}

	configs.Log.Info("✅ Redis connected", zap.String("addr", configs.RedisAddr))
	Redis = rdb
	return nil
}
