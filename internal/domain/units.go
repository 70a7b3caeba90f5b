package domain

import "fmt"

// Units selects the unit system for distance values.
type Units string

const (
	UnitsMiles      Units = "mi"
	UnitsKilometers Units = "km"
)

const (
	// EarthRadiusKm is the mean Earth radius used for great-circle math.
	EarthRadiusKm = 6371.0
	// KmToMi converts kilometers to miles.
	KmToMi = 0.621371
)

// ParseUnits validates a unit string from user input.
func ParseUnits(s string) (Units, error) {
	switch Units(s) {
	case UnitsMiles, UnitsKilometers:
		return Units(s), nil
	case "":
		return UnitsMiles, nil
	}
	return "", fmt.Errorf("invalid units %q: must be one of mi, km", s)
}

// SphereRadius returns the Earth radius in the selected unit.
func (u Units) SphereRadius() float64 {
	if u == UnitsMiles {
		return EarthRadiusKm * KmToMi
	}
	return EarthRadiusKm
}
