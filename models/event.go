package models

import "time"

// Event is a dance competition at which services are booked.
type Event struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name" binding:"required"`
	EventType string    `bson:"eventType" json:"eventType"` // regional, national, showcase
	Venue     string    `bson:"venue" json:"venue"`
	City      string    `bson:"city" json:"city"`
	StartDate string    `bson:"startDate" json:"startDate" binding:"required"` // YYYY-MM-DD
	EndDate   string    `bson:"endDate" json:"endDate" binding:"required"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

const (
	EventTypeRegional = "regional"
	EventTypeNational = "national"
	EventTypeShowcase = "showcase"
)
