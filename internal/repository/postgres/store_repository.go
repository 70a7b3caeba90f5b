package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/store-locator/internal/domain"
)

// StoreRepository reads and writes the stores table. It satisfies
// repository.StoreRepository and additionally supports bulk replacement
// for the CSV importer.
type StoreRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewStoreRepository(db *DB) *StoreRepository {
	return &StoreRepository{
		db:     db,
		logger: db.logger,
	}
}

const selectAllStores = `
	SELECT name, location, address, city, state, zip_code, latitude, longitude, county
	FROM stores
	ORDER BY id`

func (r *StoreRepository) GetAll(ctx context.Context) ([]domain.Store, error) {
	var stores []domain.Store
	if err := r.db.SelectContext(ctx, &stores, selectAllStores); err != nil {
		r.logger.Error("Failed to load stores", zap.Error(err))
		return nil, fmt.Errorf("select stores: %w", err)
	}
	return stores, nil
}

const insertStore = `
	INSERT INTO stores (name, location, address, city, state, zip_code, latitude, longitude, county)
	VALUES (:name, :location, :address, :city, :state, :zip_code, :latitude, :longitude, :county)`

// ReplaceAll swaps the whole dataset in one transaction. The store
// dataset is a single static file, so a full replace keeps row order
// (and with it the nearest-search tie-break) identical to the source.
func (r *StoreRepository) ReplaceAll(ctx context.Context, stores []domain.Store) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `TRUNCATE stores RESTART IDENTITY`); err != nil {
		return fmt.Errorf("truncate stores: %w", err)
	}

	for _, store := range stores {
		if _, err := tx.NamedExecContext(ctx, insertStore, store); err != nil {
			return fmt.Errorf("insert store %q: %w", store.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	r.logger.Info("Store dataset replaced", zap.Int("count", len(stores)))
	return nil
}
