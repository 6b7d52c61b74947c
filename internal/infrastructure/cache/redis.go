package cache

import (
	"context"
	"fmt"
	"time"

	"recipe-extractor/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
)

// RedisService Redis 快取鏡像
type RedisService struct {
	client *redis.Client
	config *config.CacheConfig
}

// NewRedisService 創建 Redis 快取服務
func NewRedisService(cfg *config.CacheConfig) (*RedisService, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisService{
		client: client,
		config: cfg,
	}, nil
}

// Get 獲取緩存
func (s *RedisService) Get(ctx context.Context, key string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("cache is disabled")
	}

	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", fmt.Errorf("cache miss")
		}
		return "", fmt.Errorf("failed to get cache: %w", err)
	}

	return data, nil
}

// Set 設置緩存
func (s *RedisService) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if s.client == nil {
		return nil
	}

	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}

	return nil
}

// Close 關閉 Redis 連接
func (s *RedisService) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}
