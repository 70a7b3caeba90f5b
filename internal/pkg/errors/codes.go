package errors

import "net/http"

var (
	ErrInvalidQuery = New(
		"INVALID_QUERY",
		"Exactly one of address or zip must be provided",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidUnits = New(
		"INVALID_UNITS",
		"Invalid units: must be one of mi, km",
		http.StatusBadRequest,
	)

	ErrInvalidFormat = New(
		"INVALID_FORMAT",
		"Invalid output format: must be one of text, json",
		http.StatusBadRequest,
	)

	ErrLocationNotFound = New(
		"LOCATION_NOT_FOUND",
		"No geocoding result found for the given location",
		http.StatusNotFound,
	)

	ErrGeocodingFailed = New(
		"GEOCODING_FAILED",
		"Geocoding service request failed",
		http.StatusBadGateway,
	)

	ErrNoStores = New(
		"NO_STORES",
		"Store dataset is empty",
		http.StatusInternalServerError,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
