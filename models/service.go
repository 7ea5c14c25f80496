package models

import "time"

// Service is a bookable styling offering owned by a stylist.
type Service struct {
	ID              string    `bson:"id" json:"id"`
	StylistID       string    `bson:"stylistId" json:"stylistId"`
	Name            string    `bson:"name" json:"name" binding:"required"`
	Category        string    `bson:"category" json:"category"` // hair, makeup, combo
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	BasePrice       float64   `bson:"basePrice" json:"basePrice" binding:"required,gt=0"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	Active          bool      `bson:"active" json:"active"`
	ImageURLs       []string  `bson:"imageUrls,omitempty" json:"imageUrls,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

const (
	CategoryHair   = "hair"
	CategoryMakeup = "makeup"
	CategoryCombo  = "combo"
)
