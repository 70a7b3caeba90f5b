package repository

import (
	"context"

	"github.com/store-locator/internal/domain"
)

// StoreRepository provides read access to the store dataset.
type StoreRepository interface {
	GetAll(ctx context.Context) ([]domain.Store, error)
}
