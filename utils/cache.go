// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"thanawyia/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DocumentCacheClient is the Redis client that holds the persisted document.
var DocumentCacheClient *redis.Client

// InitDocumentCache connects the Redis client used by the document persistence adapter.
func InitDocumentCache() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDocumentDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis (document store): %w", err)
	}
	DocumentCacheClient = client
	GetLogger().Info("Connected to Redis", zap.String("addr", config.AppConfig.RedisAddr), zap.Int("db", config.AppConfig.RedisDocumentDB))
	return nil
}

// GetDocumentCacheClient returns the document Redis client, connecting on first use.
func GetDocumentCacheClient() (*redis.Client, error) {
	if DocumentCacheClient == nil {
		if err := InitDocumentCache(); err != nil {
			return nil, err
		}
	}
	return DocumentCacheClient, nil
}
