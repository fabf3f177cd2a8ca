package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/seacatering/backend/internal/database"
	"github.com/seacatering/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogListActivePlans(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, database.SeedMealPlans(db))
	// Seeding twice must not duplicate the catalog.
	require.NoError(t, database.SeedMealPlans(db))

	svc := NewCatalogService(db)

	plans, err := svc.ListActivePlans()
	require.NoError(t, err)
	require.Len(t, plans, 3)

	for _, plan := range plans {
		assert.True(t, plan.IsActive)
		require.Len(t, plan.Meals, 3)
		// meals come back ordered by meal type
		assert.Equal(t, models.MealTypeBreakfast, plan.Meals[0].MealType)
		assert.Equal(t, models.MealTypeDinner, plan.Meals[1].MealType)
		assert.Equal(t, models.MealTypeLunch, plan.Meals[2].MealType)
		assert.NotEmpty(t, plan.Features)
	}

	t.Run("inactive plans are hidden", func(t *testing.T) {
		require.NoError(t, db.Create(&models.MealPlan{
			ID:        uuid.New(),
			Name:      "Retired Plan",
			Price:     50000,
			Category:  "balanced",
			IsActive:  false,
			CreatedAt: time.Now(),
		}).Error)

		plans, err := svc.ListActivePlans()
		require.NoError(t, err)
		assert.Len(t, plans, 3)
	})
}
