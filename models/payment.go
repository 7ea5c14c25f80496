package models

import "time"

// PaymentRequest describes a charge to run for a booking: the dancer pays
// the final price, the platform fee stays with us and the remainder is
// transferred to the stylist's connected account.
type PaymentRequest struct {
	BookingID        string
	DancerID         string
	StylistAccountID string
	Amount           float64 // final price, major units
	ApplicationFee   float64 // platform fee, major units
	Currency         string
	PaymentMethodID  string
	Description      string
}

// Invoice records the outcome of a processed payment.
type Invoice struct {
	InvoiceID       string    `bson:"invoiceId" json:"invoiceId"`
	BookingID       string    `bson:"bookingId" json:"bookingId"`
	DancerID        string    `bson:"dancerId" json:"dancerId"`
	Amount          float64   `bson:"amount" json:"amount"`
	PlatformFee     float64   `bson:"platformFee" json:"platformFee"`
	Currency        string    `bson:"currency" json:"currency"`
	PaymentIntentID string    `bson:"paymentIntentId" json:"paymentIntentId"`
	Status          string    `bson:"status" json:"status"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}
