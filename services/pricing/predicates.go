package pricing

import (
	"slices"

	"pirouette/models"
)

// ruleMatches decides whether a rule's conditions are satisfied by the
// pricing context. Predicates are permissive: an absent condition field
// imposes no constraint. Unknown rule types never match, so a corrupted rule
// cannot abort pricing for its whole service.
func ruleMatches(rule models.PricingRule, pctx models.PricingContext) bool {
	switch rule.RuleType {
	case models.RuleTimeBased:
		return matchTimeBased(rule.Conditions, pctx)
	case models.RuleAdvanceBooking:
		return matchAdvanceBooking(rule.Conditions, pctx)
	case models.RuleEventBased:
		// Event-type classification is not wired up yet; eventTypes is
		// carried in the payload but every event currently matches.
		return true
	case models.RuleSeasonal:
		return matchSeasonal(rule.Conditions, pctx)
	case models.RuleGroupSize:
		return matchDuration(rule.Conditions, pctx)
	case models.RuleDemandBased:
		// Placeholder until a demand signal exists.
		return true
	default:
		return false
	}
}

func matchTimeBased(c models.RuleConditions, pctx models.PricingContext) bool {
	if len(c.DaysOfWeek) > 0 {
		weekday := int(pctx.Date.Weekday()) // 0=Sunday, matches stored convention
		if !slices.Contains(c.DaysOfWeek, weekday) {
			return false
		}
	}
	if c.TimeRange != nil {
		hour := pctx.StartHour()
		if hour < c.TimeRange.Start || hour >= c.TimeRange.End {
			return false
		}
	}
	return true
}

func matchAdvanceBooking(c models.RuleConditions, pctx models.PricingContext) bool {
	if c.MinDays != nil && pctx.AdvanceBookingDays < *c.MinDays {
		return false
	}
	if c.MaxDays != nil && pctx.AdvanceBookingDays > *c.MaxDays {
		return false
	}
	return true
}

func matchSeasonal(c models.RuleConditions, pctx models.PricingContext) bool {
	if len(c.Months) == 0 {
		return true
	}
	return slices.Contains(c.Months, int(pctx.Date.Month()))
}

func matchDuration(c models.RuleConditions, pctx models.PricingContext) bool {
	if c.MinDuration != nil && pctx.Duration < *c.MinDuration {
		return false
	}
	if c.MaxDuration != nil && pctx.Duration > *c.MaxDuration {
		return false
	}
	return true
}
