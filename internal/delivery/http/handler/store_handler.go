package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/store-locator/internal/pkg/utils"
	"github.com/store-locator/internal/pkg/validator"
	"github.com/store-locator/internal/usecase"
	"github.com/store-locator/internal/usecase/dto"
)

// StoreHandler serves the nearest-store search and the store listing.
type StoreHandler struct {
	locatorUC *usecase.LocatorUseCase
	logger    *zap.Logger
}

func NewStoreHandler(locatorUC *usecase.LocatorUseCase, logger *zap.Logger) *StoreHandler {
	return &StoreHandler{
		locatorUC: locatorUC,
		logger:    logger,
	}
}

// FindNearest handles GET /api/v1/stores/nearest with query parameters
// address, zip and units.
func (h *StoreHandler) FindNearest(c *fiber.Ctx) error {
	req := dto.NearestStoreRequest{
		Address: c.Query("address"),
		Zip:     c.Query("zip"),
		Units:   c.Query("units", "mi"),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.locatorUC.FindNearestStore(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// FindNearestPost handles POST /api/v1/stores/nearest with a JSON body.
func (h *StoreHandler) FindNearestPost(c *fiber.Ctx) error {
	var req dto.NearestStoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.locatorUC.FindNearestStore(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// ListStores handles GET /api/v1/stores.
func (h *StoreHandler) ListStores(c *fiber.Ctx) error {
	result, err := h.locatorUC.ListStores(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
