package render

import (
	"encoding/json"
	"fmt"

	apperrors "github.com/store-locator/internal/pkg/errors"
	"github.com/store-locator/internal/usecase/dto"
)

// Format selects how a search result is rendered. The data model
// carries no presentation logic; each format has its own function.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a format string from user input.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON:
		return Format(s), nil
	case "":
		return FormatText, nil
	}
	return "", apperrors.ErrInvalidFormat
}

// NearestStore renders a ranked search result in the given format.
func NearestStore(result *dto.NearestStoreResponse, format Format) (string, error) {
	switch format {
	case FormatText:
		return renderText(result), nil
	case FormatJSON:
		return renderJSON(result)
	}
	return "", apperrors.ErrInvalidFormat
}

func renderText(result *dto.NearestStoreResponse) string {
	return fmt.Sprintf("%s, %s, %s, %s\nDistance to store: %.2f",
		result.Address,
		result.City,
		result.State,
		result.ZipCode,
		result.DistanceToStore,
	)
}

func renderJSON(result *dto.NearestStoreResponse) (string, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	return string(data), nil
}
