package database

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/seacatering/backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type seedMeal struct {
	Name        string
	Description string
	Calories    int
	Protein     int
	Carbs       int
	Fats        int
	MealType    string
}

type seedPlan struct {
	Name        string
	Price       int64
	Description string
	Duration    string
	Category    string
	Features    []string
	Meals       []seedMeal
}

var defaultPlans = []seedPlan{
	{
		Name:        "Diet Plan",
		Price:       30000,
		Description: "Portion-controlled meals designed around a daily calorie deficit.",
		Duration:    "Weekly",
		Category:    "weight loss",
		Features:    []string{"Calorie-controlled portions", "High fiber", "Low sugar", "Fresh vegetables daily"},
		Meals: []seedMeal{
			{"Oat Berry Bowl", "Rolled oats with mixed berries and chia seeds", 320, 11, 52, 8, models.MealTypeBreakfast},
			{"Grilled Chicken Salad", "Grilled chicken breast over greens with citrus dressing", 410, 35, 22, 14, models.MealTypeLunch},
			{"Steamed Fish & Greens", "Steamed snapper with bok choy and brown rice", 450, 38, 40, 12, models.MealTypeDinner},
		},
	},
	{
		Name:        "Protein Plan",
		Price:       40000,
		Description: "High-protein meals built for muscle gain and recovery.",
		Duration:    "Weekly",
		Category:    "muscle gain",
		Features:    []string{"40g+ protein per meal", "Lean cuts only", "Complex carbohydrates", "Post-workout friendly"},
		Meals: []seedMeal{
			{"Egg White Scramble", "Egg whites with spinach, tomato and whole-grain toast", 380, 32, 30, 10, models.MealTypeBreakfast},
			{"Beef Teriyaki Bowl", "Lean beef with teriyaki glaze over red rice", 560, 45, 48, 16, models.MealTypeLunch},
			{"Grilled Salmon Plate", "Salmon fillet with quinoa and roasted broccoli", 540, 42, 36, 20, models.MealTypeDinner},
		},
	},
	{
		Name:        "Royal Plan",
		Price:       60000,
		Description: "Chef-curated balanced menus with premium ingredients.",
		Duration:    "Weekly",
		Category:    "balanced",
		Features:    []string{"Chef-curated menu", "Premium ingredients", "Balanced macros", "Rotating weekly menu"},
		Meals: []seedMeal{
			{"Smoked Salmon Croissant", "Butter croissant with smoked salmon and soft cheese", 470, 24, 38, 24, models.MealTypeBreakfast},
			{"Truffle Mushroom Pasta", "Fresh pasta with truffle cream and roasted mushrooms", 620, 20, 68, 26, models.MealTypeLunch},
			{"Wagyu Steak Dinner", "Wagyu sirloin with mashed potato and seasonal greens", 680, 44, 42, 32, models.MealTypeDinner},
		},
	},
}

// SeedMealPlans inserts the default catalog when the meal_plans table is
// empty. Re-running on a populated database is a no-op.
func SeedMealPlans(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.MealPlan{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count meal plans: %w", err)
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, sp := range defaultPlans {
			plan := models.MealPlan{
				ID:          uuid.New(),
				Name:        sp.Name,
				Price:       sp.Price,
				Description: sp.Description,
				Duration:    sp.Duration,
				Category:    sp.Category,
				Features:    datatypes.NewJSONSlice(sp.Features),
				IsActive:    true,
			}
			for _, sm := range sp.Meals {
				calories, protein, carbs, fats := sm.Calories, sm.Protein, sm.Carbs, sm.Fats
				plan.Meals = append(plan.Meals, models.Meal{
					ID:          uuid.New(),
					Name:        sm.Name,
					Description: sm.Description,
					Calories:    &calories,
					Protein:     &protein,
					Carbs:       &carbs,
					Fats:        &fats,
					MealType:    sm.MealType,
				})
			}
			if err := tx.Create(&plan).Error; err != nil {
				return fmt.Errorf("failed to seed plan %q: %w", sp.Name, err)
			}
		}
		slog.Info("meal plan catalog seeded", "plans", len(defaultPlans))
		return nil
	})
}
