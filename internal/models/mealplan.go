package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MealPlan is a catalog entry. Plans and their meals are read-only from the
// API; they are seeded at startup and managed out of band.
type MealPlan struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string                      `gorm:"size:255;not null" json:"name"`
	Price       int64                       `gorm:"not null" json:"price"`
	Description string                      `gorm:"type:text" json:"description"`
	Duration    string                      `gorm:"size:50" json:"duration"`
	Category    string                      `gorm:"size:50;index" json:"category"`
	Features    datatypes.JSONSlice[string] `json:"features"`
	IsActive    bool                        `gorm:"default:true;index" json:"isActive"`
	CreatedAt   time.Time                   `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
	Meals       []Meal                      `gorm:"foreignKey:MealPlanID" json:"meals"`
}

const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
)

type Meal struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MealPlanID  uuid.UUID `gorm:"type:uuid;not null;index" json:"mealPlanId"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Calories    *int      `json:"calories,omitempty"`
	Protein     *int      `json:"protein,omitempty"`
	Carbs       *int      `json:"carbs,omitempty"`
	Fats        *int      `json:"fats,omitempty"`
	MealType    string    `gorm:"size:20;not null;index" json:"mealType"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
