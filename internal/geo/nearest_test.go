package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/store-locator/internal/domain"
	"github.com/store-locator/internal/geo"
)

func TestFindNearest_ReturnsMinimum(t *testing.T) {
	query := domain.Point{Lat: 40.0, Lon: -100.0}

	// Stores at increasing latitude offsets: the middle one is closest.
	stores := []domain.Store{
		{Name: "two", Lat: 40.2, Lon: -100.0},
		{Name: "one", Lat: 40.1, Lon: -100.0},
		{Name: "three", Lat: 40.3, Lon: -100.0},
	}

	result, err := geo.FindNearest(query, stores, domain.UnitsMiles)
	require.NoError(t, err)

	assert.Equal(t, "one", result.Name)
	assert.Equal(t, geo.Distance(query, stores[1].Point(), domain.UnitsMiles), result.DistanceToStore)

	// The winner achieves the minimum over all candidates.
	for _, s := range stores {
		assert.LessOrEqual(t, result.DistanceToStore, geo.Distance(query, s.Point(), domain.UnitsMiles))
	}
}

func TestFindNearest_TieBreakKeepsFirst(t *testing.T) {
	query := domain.Point{Lat: 40.0, Lon: -100.0}

	// Both stores sit at the same coordinates: exactly equal distance.
	stores := []domain.Store{
		{Name: "first", Lat: 40.5, Lon: -100.0},
		{Name: "second", Lat: 40.5, Lon: -100.0},
	}

	result, err := geo.FindNearest(query, stores, domain.UnitsKilometers)
	require.NoError(t, err)

	assert.Equal(t, "first", result.Name)
}

func TestFindNearest_EmptyInput(t *testing.T) {
	query := domain.Point{Lat: 40.0, Lon: -100.0}

	result, err := geo.FindNearest(query, nil, domain.UnitsMiles)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, geo.ErrNoCandidates)
}

func TestFindNearest_DoesNotMutateInput(t *testing.T) {
	query := domain.Point{Lat: 0, Lon: 0}
	stores := []domain.Store{
		{Name: "a", Lat: 1, Lon: 1},
		{Name: "b", Lat: 2, Lon: 2},
	}
	original := make([]domain.Store, len(stores))
	copy(original, stores)

	_, err := geo.FindNearest(query, stores, domain.UnitsMiles)
	require.NoError(t, err)

	assert.Equal(t, original, stores)
}

func TestFindNearest_SingleCandidate(t *testing.T) {
	query := domain.Point{Lat: 45.0, Lon: -93.0}
	stores := []domain.Store{{Name: "only", Lat: 45.0521539, Lon: -93.364854}}

	result, err := geo.FindNearest(query, stores, domain.UnitsMiles)
	require.NoError(t, err)

	assert.Equal(t, "only", result.Name)
	assert.Greater(t, result.DistanceToStore, 0.0)
}
