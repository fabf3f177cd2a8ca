package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/seacatering/backend/internal/dto"
	"github.com/seacatering/backend/internal/models"
	"gorm.io/gorm"
)

type TestimonialService struct {
	db *gorm.DB
}

func NewTestimonialService(db *gorm.DB) *TestimonialService {
	return &TestimonialService{db: db}
}

// Create validates and stores a testimonial. userID is nil for anonymous
// visitors.
func (s *TestimonialService) Create(req *dto.CreateTestimonialRequest, userID *uuid.UUID) (*models.Testimonial, error) {
	if len(strings.TrimSpace(req.CustomerName)) < 3 {
		return nil, fmt.Errorf("%w: customerName must be at least 3 characters", ErrInvalidInput)
	}
	if len(strings.TrimSpace(req.ReviewMessage)) < 10 {
		return nil, fmt.Errorf("%w: reviewMessage must be at least 10 characters", ErrInvalidInput)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	}

	t := models.Testimonial{
		ID:            uuid.New(),
		CustomerName:  strings.TrimSpace(req.CustomerName),
		ReviewMessage: strings.TrimSpace(req.ReviewMessage),
		Rating:        req.Rating,
		UserID:        userID,
	}

	if err := s.db.Create(&t).Error; err != nil {
		return nil, fmt.Errorf("failed to create testimonial: %w", err)
	}
	return &t, nil
}

// List returns testimonials newest first, for the landing page carousel.
func (s *TestimonialService) List() ([]models.Testimonial, error) {
	var list []models.Testimonial
	if err := s.db.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	return list, nil
}
