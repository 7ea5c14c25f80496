package pricing

import (
	"context"
	"time"

	accountRepo "pirouette/database/repository/account"
	eventRepo "pirouette/database/repository/event"
	ruleRepo "pirouette/database/repository/pricingrule"
	serviceRepo "pirouette/database/repository/service"
	"pirouette/models"
)

// Engine computes a price quote for booking a service at an event.
// A quote is read-only: the engine fetches its inputs once and performs no
// writes, so callers may safely retry a failed quote.
type Engine interface {
	Quote(ctx context.Context, req models.QuoteRequest) (*models.PriceQuote, error)
}

// DefaultPricingEngine implements Engine over the mongo repositories.
//
// FeeRate is the platform commission taken from the final price; FloorRate
// bounds the final price at FloorRate * basePrice no matter what the rule
// stack does. Both are resolved from configuration at wiring time.
type DefaultPricingEngine struct {
	Services serviceRepo.ServiceRepository
	Stylists accountRepo.StylistRepository
	Events   eventRepo.EventRepository
	Rules    ruleRepo.PricingRuleRepository

	FeeRate   float64
	FloorRate float64

	// Now is overridable for deterministic advance-day derivation in tests.
	Now func() time.Time
}

func (e *DefaultPricingEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}
