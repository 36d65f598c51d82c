// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"drmike/config"

	"github.com/go-redis/redis/v8"
)

// ViewCacheClient holds landing view sessions when VIEW_STORE=redis.
var ViewCacheClient *redis.Client

// InitViewCache connects the view-session Redis client and pings it.
func InitViewCache() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisViewDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to connect to Redis (view cache): %w", err)
	}
	ViewCacheClient = client
	return nil
}

// GetViewCacheClient returns the view-session client, connecting on first use.
func GetViewCacheClient() (*redis.Client, error) {
	if ViewCacheClient == nil {
		if err := InitViewCache(); err != nil {
			return nil, err
		}
	}
	return ViewCacheClient, nil
}
