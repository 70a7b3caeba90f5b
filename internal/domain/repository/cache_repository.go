package repository

import (
	"context"
	"time"

	"github.com/store-locator/internal/domain"
)

// CacheRepository is a byte-oriented cache with typed helpers for
// geocoding results. GetGeocode returns (nil, nil) on a cache miss.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)

	GetGeocode(ctx context.Context, query string) (*domain.Point, error)
	SetGeocode(ctx context.Context, query string, point domain.Point, ttl time.Duration) error
}
