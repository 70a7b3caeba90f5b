package geo

import (
	"math"

	"github.com/store-locator/internal/domain"
)

// Distance computes the great-circle distance between two points using
// the haversine formula: https://en.wikipedia.org/wiki/Haversine_formula
//
// The result is in the requested unit system. Inputs are assumed to be
// valid coordinates; callers validate before reaching this package.
func Distance(a, b domain.Point, units domain.Units) float64 {
	sinHalfDLat := math.Sin((b.LatRadians() - a.LatRadians()) / 2)
	sinHalfDLon := math.Sin((b.LonRadians() - a.LonRadians()) / 2)

	h := sinHalfDLat*sinHalfDLat +
		math.Cos(a.LatRadians())*math.Cos(b.LatRadians())*sinHalfDLon*sinHalfDLon

	return 2 * units.SphereRadius() * math.Asin(math.Sqrt(h))
}
