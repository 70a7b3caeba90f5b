package dto

import "github.com/store-locator/internal/domain"

// NearestStoreResponse is the ranked search result. Field order mirrors
// the store dataset columns, with the computed distance last.
type NearestStoreResponse struct {
	Name            string  `json:"name"`
	Location        string  `json:"location"`
	Address         string  `json:"address"`
	City            string  `json:"city"`
	State           string  `json:"state"`
	ZipCode         string  `json:"zip_code"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	County          string  `json:"county"`
	DistanceToStore float64 `json:"distance_to_store"`
	Units           string  `json:"units"`
}

// ConvertNearestStore maps the domain result onto the response DTO.
func ConvertNearestStore(nearest *domain.NearestStore) *NearestStoreResponse {
	return &NearestStoreResponse{
		Name:            nearest.Name,
		Location:        nearest.Location,
		Address:         nearest.Address,
		City:            nearest.City,
		State:           nearest.State,
		ZipCode:         nearest.ZipCode,
		Latitude:        nearest.Lat,
		Longitude:       nearest.Lon,
		County:          nearest.County,
		DistanceToStore: nearest.DistanceToStore,
		Units:           string(nearest.Units),
	}
}

// StoreListResponse is the unranked store listing. Stores carry no
// distance field: they have not been ranked against a query point.
type StoreListResponse struct {
	Stores []domain.Store `json:"stores"`
	Total  int            `json:"total"`
}
