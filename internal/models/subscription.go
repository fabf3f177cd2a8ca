package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	StatusActive    = "ACTIVE"
	StatusPaused    = "PAUSED"
	StatusCancelled = "CANCELLED"
)

// Subscription is a user's recurring meal-delivery order. TotalPrice is
// fixed at creation time; pause and cancel never recompute it.
type Subscription struct {
	ID             uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID                   `gorm:"type:uuid;not null;index" json:"userId"`
	PlanName       string                      `gorm:"size:255;not null" json:"planName"`
	MealTypes      datatypes.JSONSlice[string] `json:"mealTypes"`
	DeliveryDays   datatypes.JSONSlice[string] `json:"deliveryDays"`
	TotalPrice     int64                       `gorm:"not null" json:"totalPrice"`
	Allergies      string                      `gorm:"type:text" json:"allergies,omitempty"`
	Status         string                      `gorm:"size:20;not null;default:'ACTIVE';index" json:"status"`
	PauseStartDate *time.Time                  `json:"pauseStartDate,omitempty"`
	PauseEndDate   *time.Time                  `json:"pauseEndDate,omitempty"`
	ReactivatedAt  *time.Time                  `gorm:"index" json:"reactivatedAt,omitempty"`
	CreatedAt      time.Time                   `gorm:"index" json:"createdAt"`
	UpdatedAt      time.Time                   `json:"updatedAt"`
	User           User                        `gorm:"foreignKey:UserID" json:"-"`
}
