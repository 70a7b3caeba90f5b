package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/store-locator/internal/domain"
	"github.com/store-locator/internal/domain/repository"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}

	return val > 0, nil
}

// geocodeKey normalizes the search text so "94109" and " 94109 " share
// a cache entry.
func geocodeKey(query string) string {
	return "geocode:" + strings.ToLower(strings.Join(strings.Fields(query), " "))
}

// GetGeocode returns a cached geocoding result, or (nil, nil) on miss.
func (r *cacheRepository) GetGeocode(ctx context.Context, query string) (*domain.Point, error) {
	data, err := r.Get(ctx, geocodeKey(query))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var point domain.Point
	if err := json.Unmarshal(data, &point); err != nil {
		r.logger.Error("Failed to unmarshal cached geocode", zap.Error(err))
		return nil, fmt.Errorf("unmarshal geocode: %w", err)
	}

	return &point, nil
}

// SetGeocode caches a geocoding result for the given TTL.
func (r *cacheRepository) SetGeocode(ctx context.Context, query string, point domain.Point, ttl time.Duration) error {
	data, err := json.Marshal(point)
	if err != nil {
		return fmt.Errorf("marshal geocode: %w", err)
	}

	return r.Set(ctx, geocodeKey(query), data, ttl)
}
