package geo

import (
	"errors"
	"math"

	"github.com/store-locator/internal/domain"
)

// ErrNoCandidates is returned when the nearest-store search is invoked
// with an empty store slice. An empty dataset is a configuration
// problem, not a transient failure.
var ErrNoCandidates = errors.New("no candidate stores to search")

// FindNearest scans stores once in order and returns the one with the
// minimum great-circle distance from query. The running best is seeded
// with the full great-circle circumference, so any real store beats it.
// Ties on exact distance keep the earlier store: the comparison is
// strictly less-than.
//
// The input slice is never mutated; the winner is copied into the
// result.
func FindNearest(query domain.Point, stores []domain.Store, units domain.Units) (*domain.NearestStore, error) {
	if len(stores) == 0 {
		return nil, ErrNoCandidates
	}

	best := 2 * math.Pi * units.SphereRadius()
	var nearest domain.Store

	for _, store := range stores {
		d := Distance(query, store.Point(), units)
		if d < best {
			best = d
			nearest = store
		}
	}

	return &domain.NearestStore{
		Store:           nearest,
		DistanceToStore: best,
		Units:           units,
	}, nil
}
