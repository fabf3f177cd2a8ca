package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/seacatering/backend/internal/dto"
	"github.com/seacatering/backend/internal/middleware"
	"github.com/seacatering/backend/internal/services"
)

type TestimonialHandler struct {
	testimonialService *services.TestimonialService
}

func NewTestimonialHandler(testimonialService *services.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: testimonialService}
}

func (h *TestimonialHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	// Attach the user when a session is present; anonymous is fine.
	var userID *uuid.UUID
	if id, err := middleware.GetUserID(c); err == nil {
		userID = &id
	}

	t, err := h.testimonialService.Create(&req, userID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(t)
}

func (h *TestimonialHandler) List(c *fiber.Ctx) error {
	list, err := h.testimonialService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(list)
}
