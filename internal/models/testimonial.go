package models

import (
	"time"

	"github.com/google/uuid"
)

// Testimonial is create-only; there is no edit or delete flow.
type Testimonial struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerName  string     `gorm:"size:255;not null" json:"customerName"`
	ReviewMessage string     `gorm:"type:text;not null" json:"reviewMessage"`
	Rating        int        `gorm:"not null" json:"rating"`
	UserID        *uuid.UUID `gorm:"type:uuid;index" json:"userId,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}
