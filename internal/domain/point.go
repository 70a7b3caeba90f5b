package domain

import "math"

// Point represents a geographic coordinate in degrees.
type Point struct {
	Lat float64 `json:"lat" db:"latitude"`
	Lon float64 `json:"lon" db:"longitude"`
}

// Valid reports whether the coordinates are within the valid
// latitude/longitude ranges.
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// LatRadians returns the latitude in radians.
func (p Point) LatRadians() float64 {
	return p.Lat * math.Pi / 180
}

// LonRadians returns the longitude in radians.
func (p Point) LonRadians() float64 {
	return p.Lon * math.Pi / 180
}
