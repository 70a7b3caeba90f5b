package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/store-locator/internal/config"
	"github.com/store-locator/internal/domain"
	"github.com/store-locator/internal/domain/repository"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *zap.Logger
}

// searchResult is a single entry of the Nominatim /search response.
// Nominatim serializes coordinates as strings.
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NewClient creates a Nominatim geocoding client. Nominatim's usage
// policy requires an identifying User-Agent on every request.
func NewClient(cfg *config.GeocoderConfig, logger *zap.Logger) repository.GeocodeRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

// Geocode resolves a free-text address or postal code to coordinates.
// Ambiguous input resolves to the first match Nominatim returns.
func (c *client) Geocode(ctx context.Context, query string) (domain.Point, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "jsonv2")
	params.Set("limit", "1")

	reqURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	c.logger.Debug("Calling Nominatim search API", zap.String("query", query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return domain.Point{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return domain.Point{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Nominatim API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return domain.Point{}, fmt.Errorf("nominatim API error: status %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return domain.Point{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(results) == 0 {
		return domain.Point{}, fmt.Errorf("%w for %q", repository.ErrNoGeocodeResult, query)
	}

	point, err := parsePoint(results[0])
	if err != nil {
		c.logger.Error("Nominatim returned malformed coordinates", zap.Error(err))
		return domain.Point{}, err
	}

	c.logger.Debug("Geocoding successful",
		zap.String("query", query),
		zap.Float64("lat", point.Lat),
		zap.Float64("lon", point.Lon),
		zap.String("display_name", results[0].DisplayName))

	return point, nil
}

func parsePoint(result searchResult) (domain.Point, error) {
	lat, err := strconv.ParseFloat(result.Lat, 64)
	if err != nil {
		return domain.Point{}, fmt.Errorf("invalid latitude %q: %w", result.Lat, err)
	}
	lon, err := strconv.ParseFloat(result.Lon, 64)
	if err != nil {
		return domain.Point{}, fmt.Errorf("invalid longitude %q: %w", result.Lon, err)
	}

	point := domain.Point{Lat: lat, Lon: lon}
	if !point.Valid() {
		return domain.Point{}, fmt.Errorf("coordinates out of range: (%f, %f)", lat, lon)
	}

	return point, nil
}
