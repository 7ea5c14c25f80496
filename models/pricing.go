package models

import (
	"fmt"
	"time"
)

// RuleType enumerates the closed set of pricing rule kinds.
type RuleType string

const (
	RuleTimeBased      RuleType = "TIME_BASED"
	RuleAdvanceBooking RuleType = "ADVANCE_BOOKING"
	RuleEventBased     RuleType = "EVENT_BASED"
	RuleSeasonal       RuleType = "SEASONAL"
	// RuleGroupSize is duration-based: it gates on booked minutes, the name
	// is kept for compatibility with stored rules.
	RuleGroupSize   RuleType = "GROUP_SIZE"
	RuleDemandBased RuleType = "DEMAND_BASED"
)

// Known reports whether the rule type is one of the supported kinds.
// Unknown types are never matched by the engine but must not break a quote.
func (t RuleType) Known() bool {
	switch t {
	case RuleTimeBased, RuleAdvanceBooking, RuleEventBased, RuleSeasonal, RuleGroupSize, RuleDemandBased:
		return true
	default:
		return false
	}
}

// ModifierType enumerates how a rule's modifier value is applied.
type ModifierType string

const (
	ModifierPercentage  ModifierType = "PERCENTAGE"   // value is a fraction, 0.15 = +15%
	ModifierFixedAmount ModifierType = "FIXED_AMOUNT" // value is a currency delta
)

// HourRange is a wall-clock hour window [Start, End).
type HourRange struct {
	Start int `bson:"start" json:"start"`
	End   int `bson:"end" json:"end"`
}

// RuleConditions is the typed condition payload of a pricing rule. Which
// fields are meaningful depends on the rule's type; every field is optional
// and an absent field imposes no constraint.
type RuleConditions struct {
	// TIME_BASED
	DaysOfWeek []int      `bson:"daysOfWeek,omitempty" json:"daysOfWeek,omitempty"` // 0=Sunday
	TimeRange  *HourRange `bson:"timeRange,omitempty" json:"timeRange,omitempty"`

	// ADVANCE_BOOKING (days, inclusive bounds)
	MinDays *int `bson:"minDays,omitempty" json:"minDays,omitempty"`
	MaxDays *int `bson:"maxDays,omitempty" json:"maxDays,omitempty"`

	// EVENT_BASED (declared but not yet filtered on, see the engine docs)
	EventTypes []string `bson:"eventTypes,omitempty" json:"eventTypes,omitempty"`

	// SEASONAL
	Months []int `bson:"months,omitempty" json:"months,omitempty"` // 1-12

	// GROUP_SIZE (booked minutes, inclusive bounds)
	MinDuration *int `bson:"minDuration,omitempty" json:"minDuration,omitempty"`
	MaxDuration *int `bson:"maxDuration,omitempty" json:"maxDuration,omitempty"`
}

// Validate checks the condition fields relevant to the given rule type.
// It is called at the repository write boundary so malformed payloads are
// rejected before they can ever reach quote evaluation.
func (c RuleConditions) Validate(t RuleType) error {
	switch t {
	case RuleTimeBased:
		for _, d := range c.DaysOfWeek {
			if d < 0 || d > 6 {
				return fmt.Errorf("daysOfWeek entry %d out of range 0-6", d)
			}
		}
		if tr := c.TimeRange; tr != nil {
			if tr.Start < 0 || tr.Start > 23 || tr.End < 1 || tr.End > 24 || tr.End <= tr.Start {
				return fmt.Errorf("timeRange [%d,%d) is not a valid hour window", tr.Start, tr.End)
			}
		}
	case RuleAdvanceBooking:
		if c.MinDays != nil && *c.MinDays < 0 {
			return fmt.Errorf("minDays must be non-negative")
		}
		if c.MaxDays != nil && *c.MaxDays < 0 {
			return fmt.Errorf("maxDays must be non-negative")
		}
		if c.MinDays != nil && c.MaxDays != nil && *c.MaxDays < *c.MinDays {
			return fmt.Errorf("maxDays %d below minDays %d", *c.MaxDays, *c.MinDays)
		}
	case RuleSeasonal:
		for _, m := range c.Months {
			if m < 1 || m > 12 {
				return fmt.Errorf("months entry %d out of range 1-12", m)
			}
		}
	case RuleGroupSize:
		if c.MinDuration != nil && *c.MinDuration < 0 {
			return fmt.Errorf("minDuration must be non-negative")
		}
		if c.MinDuration != nil && c.MaxDuration != nil && *c.MaxDuration < *c.MinDuration {
			return fmt.Errorf("maxDuration %d below minDuration %d", *c.MaxDuration, *c.MinDuration)
		}
	case RuleEventBased, RuleDemandBased:
		// Nothing to constrain yet.
	default:
		return fmt.Errorf("unknown rule type %q", t)
	}
	return nil
}

// PricingRule is a stylist-authored price adjustment attached to a service.
type PricingRule struct {
	ID            string         `bson:"id" json:"id"`
	ServiceID     string         `bson:"serviceId" json:"serviceId"`
	Name          string         `bson:"name" json:"name"`
	Description   string         `bson:"description,omitempty" json:"description,omitempty"`
	RuleType      RuleType       `bson:"ruleType" json:"ruleType"`
	ModifierType  ModifierType   `bson:"modifierType" json:"modifierType"`
	ModifierValue float64        `bson:"modifierValue" json:"modifierValue"`
	Priority      int            `bson:"priority" json:"priority"` // 0-100, higher evaluates first
	IsActive      bool           `bson:"isActive" json:"isActive"`
	Conditions    RuleConditions `bson:"conditions" json:"conditions"`
	CreatedAt     time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// PricingContext carries everything a rule predicate may inspect. It is
// assembled per quote and never persisted.
type PricingContext struct {
	ServiceID          string
	EventID            string
	Date               time.Time // booking calendar date
	StartMinute        int       // minutes since midnight
	EndMinute          int
	Duration           int // minutes, EndMinute - StartMinute
	AdvanceBookingDays int
	BasePrice          float64
}

// StartHour returns the wall-clock hour of the booking start.
func (c PricingContext) StartHour() int {
	return c.StartMinute / 60
}

// AppliedRule is one entry of a quote's audit trail, recorded in the order
// rules were applied.
type AppliedRule struct {
	RuleID        string       `bson:"ruleId" json:"ruleId"`
	Name          string       `bson:"name" json:"name"`
	RuleType      RuleType     `bson:"ruleType" json:"ruleType"`
	ModifierType  ModifierType `bson:"modifierType" json:"modifierType"`
	ModifierValue float64      `bson:"modifierValue" json:"modifierValue"`
	PreviousPrice float64      `bson:"previousPrice" json:"previousPrice"`
	NewPrice      float64      `bson:"newPrice" json:"newPrice"`
	PriceChange   float64      `bson:"priceChange" json:"priceChange"`
}

// QuoteRequest is the logical request shape of a pricing calculation.
type QuoteRequest struct {
	ServiceID          string `json:"serviceId" binding:"required"`
	EventID            string `json:"eventId" binding:"required"`
	Date               string `json:"date" binding:"required"`      // YYYY-MM-DD
	StartTime          string `json:"startTime" binding:"required"` // HH:MM
	EndTime            string `json:"endTime" binding:"required"`   // HH:MM
	AdvanceBookingDays *int   `json:"advanceBookingDays,omitempty" binding:"omitempty,gte=0"`
}

// QuoteContext summarizes the resolved collaborators for display.
type QuoteContext struct {
	ServiceName        string `json:"serviceName"`
	StylistName        string `json:"stylistName"`
	EventName          string `json:"eventName"`
	Duration           int    `json:"duration"`
	AdvanceBookingDays int    `json:"advanceBookingDays"`
}

// PriceQuote is the result of a pricing calculation. All money fields are
// rounded to two decimals.
type PriceQuote struct {
	BasePrice             float64       `json:"basePrice"`
	FinalPrice            float64       `json:"finalPrice"`
	PriceChange           float64       `json:"priceChange"`
	PriceChangePercentage float64       `json:"priceChangePercentage"`
	PlatformFee           float64       `json:"platformFee"`
	StylistPayout         float64       `json:"stylistPayout"`
	AppliedRules          []AppliedRule `json:"appliedRules"`
	Context               QuoteContext  `json:"context"`
}
