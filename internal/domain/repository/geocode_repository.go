package repository

import (
	"context"
	"errors"

	"github.com/store-locator/internal/domain"
)

// ErrNoGeocodeResult is returned when the geocoder finds no match for
// the query.
var ErrNoGeocodeResult = errors.New("no geocoding result found")

// GeocodeRepository resolves a free-text address or postal code to
// coordinates. Implementations return the first match for ambiguous
// input; that is the collaborator's contract, not something callers
// adjudicate.
type GeocodeRepository interface {
	Geocode(ctx context.Context, query string) (domain.Point, error)
}
