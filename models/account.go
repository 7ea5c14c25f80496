package models

import "time"

// Dancer is a competitor account that books styling services.
type Dancer struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name" binding:"required"`
	Email        string    `bson:"email" json:"email" binding:"required,email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	Studio       string    `bson:"studio,omitempty" json:"studio,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Stylist is a hair/makeup professional account offering services at events.
type Stylist struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name" binding:"required"`
	Email           string    `bson:"email" json:"email" binding:"required,email"`
	PasswordHash    string    `bson:"passwordHash" json:"-"`
	TokenHash       string    `bson:"tokenHash,omitempty" json:"-"`
	Bio             string    `bson:"bio,omitempty" json:"bio,omitempty"`
	StripeAccountID string    `bson:"stripeAccountId,omitempty" json:"-"`
	PortfolioURLs   []string  `bson:"portfolioUrls,omitempty" json:"portfolioUrls,omitempty"`
	Active          bool      `bson:"active" json:"active"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

const (
	RoleDancer  = "dancer"
	RoleStylist = "stylist"
)
