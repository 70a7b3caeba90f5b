package csvstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/store-locator/internal/repository/csvstore"
)

const header = "Store Name,Store Location,Address,City,State,Zip Code,Latitude,Longitude,County\n"

func writeDataset(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "store-locations.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestStoreRepository_GetAll(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("parses valid dataset", func(t *testing.T) {
		path := writeDataset(t, header+
			"Crystal,SWC Broadway & Bass Lake Rd,5537 W Broadway Ave,Crystal,MN,55428-3507,45.0521539,-93.364854,Hennepin County\n"+
			"Duluth,Miller Hill Mall,1902 Miller Trunk Hwy,Duluth,MN,55811-1810,46.8056555,-92.1626703,St Louis County\n")

		repo := csvstore.NewStoreRepository(path, logger)
		stores, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, stores, 2)

		assert.Equal(t, "Crystal", stores[0].Name)
		assert.Equal(t, "SWC Broadway & Bass Lake Rd", stores[0].Location)
		assert.Equal(t, "5537 W Broadway Ave", stores[0].Address)
		assert.Equal(t, "55428-3507", stores[0].ZipCode)
		assert.Equal(t, 45.0521539, stores[0].Lat)
		assert.Equal(t, -93.364854, stores[0].Lon)
		assert.Equal(t, "Hennepin County", stores[0].County)
		assert.Equal(t, "Duluth", stores[1].Name)
	})

	t.Run("preserves dataset order", func(t *testing.T) {
		path := writeDataset(t, header+
			"B,loc,addr,city,ST,00002,2.0,2.0,County\n"+
			"A,loc,addr,city,ST,00001,1.0,1.0,County\n")

		repo := csvstore.NewStoreRepository(path, logger)
		stores, err := repo.GetAll(ctx)
		require.NoError(t, err)

		assert.Equal(t, "B", stores[0].Name)
		assert.Equal(t, "A", stores[1].Name)
	})

	t.Run("malformed latitude fails the load", func(t *testing.T) {
		path := writeDataset(t, header+
			"Crystal,loc,addr,Crystal,MN,55428,not-a-float,-93.364854,Hennepin County\n")

		repo := csvstore.NewStoreRepository(path, logger)
		_, err := repo.GetAll(ctx)

		assert.ErrorContains(t, err, "invalid latitude")
		assert.ErrorContains(t, err, "row 2")
	})

	t.Run("out of range coordinates fail the load", func(t *testing.T) {
		path := writeDataset(t, header+
			"Crystal,loc,addr,Crystal,MN,55428,133.0,37.0,Hennepin County\n")

		repo := csvstore.NewStoreRepository(path, logger)
		_, err := repo.GetAll(ctx)

		assert.ErrorContains(t, err, "out of range")
	})

	t.Run("wrong column count fails the load", func(t *testing.T) {
		path := writeDataset(t, header+
			"Crystal,addr,Crystal,MN,55428,45.0,-93.3\n")

		repo := csvstore.NewStoreRepository(path, logger)
		_, err := repo.GetAll(ctx)

		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		repo := csvstore.NewStoreRepository(filepath.Join(t.TempDir(), "missing.csv"), logger)
		_, err := repo.GetAll(ctx)

		assert.ErrorContains(t, err, "failed to open store dataset")
	})

	t.Run("header only dataset is empty", func(t *testing.T) {
		path := writeDataset(t, header)

		repo := csvstore.NewStoreRepository(path, logger)
		stores, err := repo.GetAll(ctx)
		require.NoError(t, err)

		assert.Empty(t, stores)
	})
}
