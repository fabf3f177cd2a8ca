package services

import (
	"fmt"

	"github.com/seacatering/backend/internal/models"
	"gorm.io/gorm"
)

type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// ListActivePlans returns active meal plans newest first, with each plan's
// meals nested and ordered by meal type.
func (s *CatalogService) ListActivePlans() ([]models.MealPlan, error) {
	var plans []models.MealPlan
	err := s.db.
		Preload("Meals", func(db *gorm.DB) *gorm.DB {
			return db.Order("meal_type ASC")
		}).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list meal plans: %w", err)
	}
	return plans, nil
}
