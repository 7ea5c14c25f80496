package pricing

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"pirouette/models"
	"pirouette/utils"
)

// Quote computes the price for booking a service at an event.
//
// Rules are applied as a strict left fold over the priority-ordered list:
// each matching rule modifies the running price produced by the rules before
// it, so higher-priority percentage rules compound into the base that later
// rules see. The fold must stay sequential; only the single upstream fetch
// precedes it and nothing after it performs I/O.
func (e *DefaultPricingEngine) Quote(ctx context.Context, req models.QuoteRequest) (*models.PriceQuote, error) {
	logger := utils.GetLogger()

	svc, err := e.Services.GetActiveByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Resource: "service", ID: req.ServiceID}
		}
		return nil, fmt.Errorf("fetch service: %w", err)
	}
	event, err := e.Events.GetActiveByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Resource: "event", ID: req.EventID}
		}
		return nil, fmt.Errorf("fetch event: %w", err)
	}
	stylist, err := e.Stylists.GetByID(ctx, svc.StylistID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Resource: "stylist", ID: svc.StylistID}
		}
		return nil, fmt.Errorf("fetch stylist: %w", err)
	}

	pctx, err := buildContext(req, svc, e.now())
	if err != nil {
		return nil, err
	}

	rules, err := e.Rules.ListActiveByService(ctx, req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("fetch pricing rules: %w", err)
	}

	finalPrice := pctx.BasePrice
	trail := make([]models.AppliedRule, 0, len(rules))
	for _, rule := range rules {
		if !ruleMatches(rule, pctx) {
			continue
		}
		next, record := applyRule(finalPrice, rule)
		finalPrice = next
		trail = append(trail, record)
	}

	// Floor clamp: a rule stack may never collapse the price below
	// FloorRate of base.
	floor := pctx.BasePrice * e.FloorRate
	if finalPrice < floor {
		logger.Debug("price floor clamped",
			zap.String("serviceId", req.ServiceID),
			zap.Float64("computed", finalPrice),
			zap.Float64("floor", floor))
		finalPrice = floor
	}

	// Round fee and payout against the rounded final price so the split
	// always sums back exactly.
	roundedFinal := round2(finalPrice)
	platformFee := round2(finalPrice * e.FeeRate)
	payout := round2(roundedFinal - platformFee)

	priceChange := finalPrice - pctx.BasePrice
	changePct := 0.0
	if pctx.BasePrice > 0 {
		changePct = priceChange / pctx.BasePrice * 100
	}

	quote := &models.PriceQuote{
		BasePrice:             round2(pctx.BasePrice),
		FinalPrice:            roundedFinal,
		PriceChange:           round2(priceChange),
		PriceChangePercentage: round2(changePct),
		PlatformFee:           platformFee,
		StylistPayout:         payout,
		AppliedRules:          roundTrail(trail),
		Context: models.QuoteContext{
			ServiceName:        svc.Name,
			StylistName:        stylist.Name,
			EventName:          event.Name,
			Duration:           pctx.Duration,
			AdvanceBookingDays: pctx.AdvanceBookingDays,
		},
	}

	logger.Debug("quote computed",
		zap.String("serviceId", req.ServiceID),
		zap.String("eventId", req.EventID),
		zap.Float64("basePrice", quote.BasePrice),
		zap.Float64("finalPrice", quote.FinalPrice),
		zap.Int("appliedRules", len(quote.AppliedRules)))

	return quote, nil
}

// round2 rounds a money value to two decimals, half away from zero.
// Intermediate prices are never pre-rounded; only outputs pass through here.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundTrail(trail []models.AppliedRule) []models.AppliedRule {
	for i := range trail {
		trail[i].PreviousPrice = round2(trail[i].PreviousPrice)
		trail[i].NewPrice = round2(trail[i].NewPrice)
		trail[i].PriceChange = round2(trail[i].PriceChange)
	}
	return trail
}
