package csvstore

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/store-locator/internal/domain"
	"github.com/store-locator/internal/domain/repository"
)

// Column order of the store-locations dataset.
const expectedColumns = 9

type storeRepository struct {
	path   string
	logger *zap.Logger
}

// NewStoreRepository creates a CSV-backed store repository. The file is
// read on every GetAll call; the dataset is small and this keeps the
// repository stateless.
func NewStoreRepository(path string, logger *zap.Logger) repository.StoreRepository {
	return &storeRepository{
		path:   path,
		logger: logger,
	}
}

func (r *storeRepository) GetAll(ctx context.Context) ([]domain.Store, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = expectedColumns

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse store dataset: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	// Skip the header row.
	records = records[1:]

	stores := make([]domain.Store, 0, len(records))
	for i, row := range records {
		store, err := parseRow(row)
		if err != nil {
			// A malformed dataset is a configuration problem: fail the
			// load rather than silently dropping rows.
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		stores = append(stores, store)
	}

	r.logger.Debug("Store dataset loaded",
		zap.String("path", r.path),
		zap.Int("count", len(stores)),
	)

	return stores, nil
}

func parseRow(row []string) (domain.Store, error) {
	lat, err := strconv.ParseFloat(row[6], 64)
	if err != nil {
		return domain.Store{}, fmt.Errorf("invalid latitude %q: %w", row[6], err)
	}
	lon, err := strconv.ParseFloat(row[7], 64)
	if err != nil {
		return domain.Store{}, fmt.Errorf("invalid longitude %q: %w", row[7], err)
	}

	store := domain.Store{
		Name:     row[0],
		Location: row[1],
		Address:  row[2],
		City:     row[3],
		State:    row[4],
		ZipCode:  row[5],
		Lat:      lat,
		Lon:      lon,
		County:   row[8],
	}

	if !store.Point().Valid() {
		return domain.Store{}, fmt.Errorf("coordinates out of range: (%f, %f)", lat, lon)
	}

	return store, nil
}
