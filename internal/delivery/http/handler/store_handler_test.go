package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/store-locator/internal/config"
	httpDelivery "github.com/store-locator/internal/delivery/http"
	"github.com/store-locator/internal/delivery/http/handler"
	"github.com/store-locator/internal/domain"
	"github.com/store-locator/internal/domain/repository"
	"github.com/store-locator/internal/usecase"
)

// stubStoreRepository serves a fixed dataset.
type stubStoreRepository struct {
	stores []domain.Store
}

func (s *stubStoreRepository) GetAll(ctx context.Context) ([]domain.Store, error) {
	return s.stores, nil
}

// stubGeocoder resolves every query to a fixed point, or fails with
// the no-result sentinel when the point is unset.
type stubGeocoder struct {
	point *domain.Point
}

func (s *stubGeocoder) Geocode(ctx context.Context, query string) (domain.Point, error) {
	if s.point == nil {
		return domain.Point{}, repository.ErrNoGeocodeResult
	}
	return *s.point, nil
}

func newTestServer(t *testing.T, stores []domain.Store, point *domain.Point) *httpDelivery.Server {
	t.Helper()

	logger := zap.NewNop()
	uc := usecase.NewLocatorUseCase(
		&stubStoreRepository{stores: stores},
		&stubGeocoder{point: point},
		nil,
		logger,
		time.Hour,
	)
	storeHandler := handler.NewStoreHandler(uc, logger)

	cfg := &config.Config{}
	return httpDelivery.NewServer(cfg, logger, storeHandler, nil, nil)
}

func decodeBody(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(body).Decode(&decoded))
	return decoded
}

func bodyReader(s string) io.Reader {
	return strings.NewReader(s)
}

func testStores() []domain.Store {
	return []domain.Store{
		{Name: "Crystal", Address: "5537 W Broadway Ave", City: "Crystal", State: "MN", ZipCode: "55428-3507", Lat: 45.0521539, Lon: -93.364854, County: "Hennepin County"},
		{Name: "Duluth", Address: "1902 Miller Trunk Hwy", City: "Duluth", State: "MN", ZipCode: "55811-1810", Lat: 46.8056555, Lon: -92.1626703, County: "St Louis County"},
	}
}

func TestStoreHandler_FindNearest(t *testing.T) {
	t.Run("returns nearest store", func(t *testing.T) {
		server := newTestServer(t, testStores(), &domain.Point{Lat: 45.05, Lon: -93.36})

		req := httptest.NewRequest("GET", "/api/v1/stores/nearest?zip=55428&units=mi", nil)
		resp, err := server.App().Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, 200, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, "Crystal", data["name"])
		assert.Equal(t, "mi", data["units"])
		assert.Greater(t, data["distance_to_store"].(float64), 0.0)
	})

	t.Run("missing address and zip", func(t *testing.T) {
		server := newTestServer(t, testStores(), &domain.Point{Lat: 45.05, Lon: -93.36})

		req := httptest.NewRequest("GET", "/api/v1/stores/nearest", nil)
		resp, err := server.App().Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, 400, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		errObj := body["error"].(map[string]interface{})
		assert.Equal(t, "INVALID_QUERY", errObj["code"])
	})

	t.Run("geocoder finds nothing", func(t *testing.T) {
		server := newTestServer(t, testStores(), nil)

		req := httptest.NewRequest("GET", "/api/v1/stores/nearest?zip=00000", nil)
		resp, err := server.App().Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, 404, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		errObj := body["error"].(map[string]interface{})
		assert.Equal(t, "LOCATION_NOT_FOUND", errObj["code"])
	})

	t.Run("empty dataset", func(t *testing.T) {
		server := newTestServer(t, nil, &domain.Point{Lat: 45.05, Lon: -93.36})

		req := httptest.NewRequest("GET", "/api/v1/stores/nearest?zip=55428", nil)
		resp, err := server.App().Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, 500, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		errObj := body["error"].(map[string]interface{})
		assert.Equal(t, "NO_STORES", errObj["code"])
	})

	t.Run("post with json body", func(t *testing.T) {
		server := newTestServer(t, testStores(), &domain.Point{Lat: 46.80, Lon: -92.16})

		payload := `{"zip": "55811", "units": "km"}`
		req := httptest.NewRequest("POST", "/api/v1/stores/nearest", bodyReader(payload))
		req.Header.Set("Content-Type", "application/json")

		resp, err := server.App().Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, 200, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, "Duluth", data["name"])
		assert.Equal(t, "km", data["units"])
	})
}

func TestStoreHandler_ListStores(t *testing.T) {
	server := newTestServer(t, testStores(), nil)

	req := httptest.NewRequest("GET", "/api/v1/stores", nil)
	resp, err := server.App().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["total"])

	stores := data["stores"].([]interface{})
	require.Len(t, stores, 2)

	// Unranked stores carry no distance field.
	first := stores[0].(map[string]interface{})
	_, hasDistance := first["distance_to_store"]
	assert.False(t, hasDistance)
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t, testStores(), nil)

	req := httptest.NewRequest("GET", "/api/v1/health", nil)
	resp, err := server.App().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, "healthy", body["status"])
}
