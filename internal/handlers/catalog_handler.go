package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seacatering/backend/internal/dto"
	"github.com/seacatering/backend/internal/services"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) ListMealPlans(c *fiber.Ctx) error {
	plans, err := h.catalogService.ListActivePlans()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(plans)
}
