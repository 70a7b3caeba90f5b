package usecase

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/store-locator/internal/domain"
	"github.com/store-locator/internal/domain/repository"
	"github.com/store-locator/internal/geo"
	apperrors "github.com/store-locator/internal/pkg/errors"
	"github.com/store-locator/internal/usecase/dto"
)

// LocatorUseCase orchestrates a nearest-store search: geocode the
// query (cache-aside when a cache is configured), load the dataset,
// and run the great-circle scan.
type LocatorUseCase struct {
	storeRepo   repository.StoreRepository
	geocodeRepo repository.GeocodeRepository
	cacheRepo   repository.CacheRepository
	logger      *zap.Logger
	cacheTTL    time.Duration
}

// NewLocatorUseCase creates a LocatorUseCase. cacheRepo may be nil; the
// CLI runs without Redis and geocodes live on every invocation.
func NewLocatorUseCase(
	storeRepo repository.StoreRepository,
	geocodeRepo repository.GeocodeRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *LocatorUseCase {
	return &LocatorUseCase{
		storeRepo:   storeRepo,
		geocodeRepo: geocodeRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// FindNearestStore resolves the request location and returns the single
// closest store with its distance in the requested unit.
func (uc *LocatorUseCase) FindNearestStore(ctx context.Context, req dto.NearestStoreRequest) (*dto.NearestStoreResponse, error) {
	query, err := searchQuery(req)
	if err != nil {
		return nil, err
	}

	units, err := domain.ParseUnits(req.Units)
	if err != nil {
		return nil, apperrors.ErrInvalidUnits
	}

	point, err := uc.resolvePoint(ctx, query)
	if err != nil {
		return nil, err
	}

	stores, err := uc.storeRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to load store dataset", zap.Error(err))
		return nil, err
	}

	nearest, err := geo.FindNearest(point, stores, units)
	if err != nil {
		if errors.Is(err, geo.ErrNoCandidates) {
			return nil, apperrors.ErrNoStores
		}
		return nil, err
	}

	uc.logger.Info("Nearest store found",
		zap.String("query", query),
		zap.String("store", nearest.Name),
		zap.Float64("distance", nearest.DistanceToStore),
		zap.String("units", string(units)),
	)

	return dto.ConvertNearestStore(nearest), nil
}

// ListStores returns the whole (unranked) dataset.
func (uc *LocatorUseCase) ListStores(ctx context.Context) (*dto.StoreListResponse, error) {
	stores, err := uc.storeRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to load store dataset", zap.Error(err))
		return nil, err
	}

	return &dto.StoreListResponse{
		Stores: stores,
		Total:  len(stores),
	}, nil
}

// searchQuery enforces the address-xor-zip contract.
func searchQuery(req dto.NearestStoreRequest) (string, error) {
	switch {
	case req.Address == "" && req.Zip == "":
		return "", apperrors.ErrInvalidQuery.WithMessage("Must specify address or zip")
	case req.Address != "" && req.Zip != "":
		return "", apperrors.ErrInvalidQuery.WithMessage("Only one of address or zip is allowed")
	case req.Address != "":
		return req.Address, nil
	default:
		return req.Zip, nil
	}
}

// resolvePoint geocodes the query with cache-aside. Cache failures are
// logged and degrade to a live geocode; a search never fails because
// Redis is down.
func (uc *LocatorUseCase) resolvePoint(ctx context.Context, query string) (domain.Point, error) {
	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetGeocode(ctx, query)
		if err != nil {
			uc.logger.Warn("Geocode cache lookup failed", zap.Error(err))
		} else if cached != nil {
			return *cached, nil
		}
	}

	point, err := uc.geocodeRepo.Geocode(ctx, query)
	if err != nil {
		if errors.Is(err, repository.ErrNoGeocodeResult) {
			return domain.Point{}, apperrors.ErrLocationNotFound.WithDetails(map[string]interface{}{
				"query": query,
			})
		}
		uc.logger.Error("Geocoding failed", zap.String("query", query), zap.Error(err))
		return domain.Point{}, apperrors.ErrGeocodingFailed
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetGeocode(ctx, query, point, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache geocode result", zap.Error(err))
		}
	}

	return point, nil
}
