package domain

// Store represents a single retail location from the store dataset.
// A Store carries no distance: it has not been ranked against any
// query point yet.
type Store struct {
	Name     string  `json:"name" db:"name"`
	Location string  `json:"location" db:"location"`
	Address  string  `json:"address" db:"address"`
	City     string  `json:"city" db:"city"`
	State    string  `json:"state" db:"state"`
	ZipCode  string  `json:"zip_code" db:"zip_code"`
	Lat      float64 `json:"latitude" db:"latitude"`
	Lon      float64 `json:"longitude" db:"longitude"`
	County   string  `json:"county" db:"county"`
}

// Point returns the store's coordinates.
func (s Store) Point() Point {
	return Point{Lat: s.Lat, Lon: s.Lon}
}

// NearestStore is a Store annotated with its computed distance from a
// query point. It is produced only by the nearest-store search, so the
// presence of a distance is a type-level fact.
type NearestStore struct {
	Store
	DistanceToStore float64 `json:"distance_to_store"`
	Units           Units   `json:"-"`
}
