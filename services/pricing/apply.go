package pricing

import "pirouette/models"

// applyRule applies a matched rule's modifier to the running price and
// records the step for the audit trail. Unknown modifier types are a no-op
// and never abort the quote. Values are kept at full precision here,
// rounding happens once at output.
func applyRule(price float64, rule models.PricingRule) (float64, models.AppliedRule) {
	newPrice := price
	switch rule.ModifierType {
	case models.ModifierPercentage:
		newPrice = price * (1 + rule.ModifierValue)
	case models.ModifierFixedAmount:
		newPrice = price + rule.ModifierValue
	default:
		// leave price unchanged
	}

	return newPrice, models.AppliedRule{
		RuleID:        rule.ID,
		Name:          rule.Name,
		RuleType:      rule.RuleType,
		ModifierType:  rule.ModifierType,
		ModifierValue: rule.ModifierValue,
		PreviousPrice: price,
		NewPrice:      newPrice,
		PriceChange:   newPrice - price,
	}
}
