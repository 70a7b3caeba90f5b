package dto

// NearestStoreRequest is a search for the store closest to an address
// or ZIP code. Exactly one of Address and Zip must be set; the usecase
// enforces the exclusivity.
type NearestStoreRequest struct {
	Address string `json:"address" validate:"omitempty,min=2,max=200"`
	Zip     string `json:"zip" validate:"omitempty,min=3,max=10"`
	Units   string `json:"units" validate:"omitempty,oneof=mi km"`
}
