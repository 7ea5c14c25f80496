package models

import "time"

// BookingRequest is the input for creating a booking. The pricing fields are
// the same shape the quote endpoint accepts, so a dancer can preview a price
// and book it with the identical payload.
type BookingRequest struct {
	ServiceID          string `json:"serviceId" binding:"required"`
	EventID            string `json:"eventId" binding:"required"`
	Date               string `json:"date" binding:"required"`      // YYYY-MM-DD
	StartTime          string `json:"startTime" binding:"required"` // HH:MM
	EndTime            string `json:"endTime" binding:"required"`   // HH:MM
	AdvanceBookingDays *int   `json:"advanceBookingDays,omitempty" binding:"omitempty,gte=0"`
	PaymentMethodID    string `json:"paymentMethodId" binding:"required"`
	Notes              string `json:"notes,omitempty"`
}

// Booking is a confirmed (or pending) reservation of a service at an event.
// The applied-rule trail of the quote is persisted with the booking so the
// charged price can always be reconstructed.
type Booking struct {
	ID              string        `bson:"id" json:"id"`
	DancerID        string        `bson:"dancerId" json:"dancerId"`
	StylistID       string        `bson:"stylistId" json:"stylistId"`
	ServiceID       string        `bson:"serviceId" json:"serviceId"`
	EventID         string        `bson:"eventId" json:"eventId"`
	Date            string        `bson:"date" json:"date"`
	StartTime       string        `bson:"startTime" json:"startTime"`
	EndTime         string        `bson:"endTime" json:"endTime"`
	Duration        int           `bson:"duration" json:"duration"` // minutes
	BasePrice       float64       `bson:"basePrice" json:"basePrice"`
	FinalPrice      float64       `bson:"finalPrice" json:"finalPrice"`
	PlatformFee     float64       `bson:"platformFee" json:"platformFee"`
	StylistPayout   float64       `bson:"stylistPayout" json:"stylistPayout"`
	AppliedRules    []AppliedRule `bson:"appliedRules,omitempty" json:"appliedRules,omitempty"`
	PaymentIntentID string        `bson:"paymentIntentId,omitempty" json:"-"`
	Status          string        `bson:"status" json:"status"`
	Notes           string        `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time     `bson:"updatedAt" json:"updatedAt"`
}

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)
