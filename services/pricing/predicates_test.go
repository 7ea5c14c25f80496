package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pirouette/models"
)

func saturdayMorning() models.PricingContext {
	return models.PricingContext{
		Date:               time.Date(2026, 6, 13, 0, 0, 0, 0, time.UTC), // Saturday
		StartMinute:        9 * 60,
		EndMinute:          10*60 + 30,
		Duration:           90,
		AdvanceBookingDays: 42,
	}
}

func rule(t models.RuleType, c models.RuleConditions) models.PricingRule {
	return models.PricingRule{RuleType: t, Conditions: c}
}

func TestRuleMatches_TimeBased(t *testing.T) {
	pctx := saturdayMorning()

	tests := []struct {
		name string
		cond models.RuleConditions
		want bool
	}{
		{"no constraints matches", models.RuleConditions{}, true},
		{"weekend days match saturday", models.RuleConditions{DaysOfWeek: []int{0, 6}}, true},
		{"weekday list excludes saturday", models.RuleConditions{DaysOfWeek: []int{1, 2, 3}}, false},
		{"hour inside window", models.RuleConditions{TimeRange: &models.HourRange{Start: 8, End: 12}}, true},
		{"window end is exclusive", models.RuleConditions{TimeRange: &models.HourRange{Start: 6, End: 9}}, false},
		{"window start is inclusive", models.RuleConditions{TimeRange: &models.HourRange{Start: 9, End: 10}}, true},
		{"day matches but hour outside", models.RuleConditions{
			DaysOfWeek: []int{6},
			TimeRange:  &models.HourRange{Start: 17, End: 21},
		}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ruleMatches(rule(models.RuleTimeBased, tc.cond), pctx))
		})
	}
}

func TestRuleMatches_AdvanceBooking(t *testing.T) {
	pctx := saturdayMorning() // 42 days in advance

	tests := []struct {
		name string
		cond models.RuleConditions
		want bool
	}{
		{"unbounded matches", models.RuleConditions{}, true},
		{"above min", models.RuleConditions{MinDays: intPtr(30)}, true},
		{"min bound inclusive", models.RuleConditions{MinDays: intPtr(42)}, true},
		{"below min", models.RuleConditions{MinDays: intPtr(60)}, false},
		{"max bound inclusive", models.RuleConditions{MaxDays: intPtr(42)}, true},
		{"above max", models.RuleConditions{MaxDays: intPtr(14)}, false},
		{"inside both bounds", models.RuleConditions{MinDays: intPtr(30), MaxDays: intPtr(60)}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ruleMatches(rule(models.RuleAdvanceBooking, tc.cond), pctx))
		})
	}
}

func TestRuleMatches_Seasonal(t *testing.T) {
	pctx := saturdayMorning() // June

	assert.True(t, ruleMatches(rule(models.RuleSeasonal, models.RuleConditions{}), pctx))
	assert.True(t, ruleMatches(rule(models.RuleSeasonal, models.RuleConditions{Months: []int{5, 6, 7}}), pctx))
	assert.False(t, ruleMatches(rule(models.RuleSeasonal, models.RuleConditions{Months: []int{12}}), pctx))
}

func TestRuleMatches_Duration(t *testing.T) {
	pctx := saturdayMorning() // 90 minutes

	tests := []struct {
		name string
		cond models.RuleConditions
		want bool
	}{
		{"unbounded matches", models.RuleConditions{}, true},
		{"min bound inclusive", models.RuleConditions{MinDuration: intPtr(90)}, true},
		{"below min", models.RuleConditions{MinDuration: intPtr(120)}, false},
		{"max bound inclusive", models.RuleConditions{MaxDuration: intPtr(90)}, true},
		{"above max", models.RuleConditions{MaxDuration: intPtr(60)}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ruleMatches(rule(models.RuleGroupSize, tc.cond), pctx))
		})
	}
}

func TestRuleMatches_PlaceholderTypes(t *testing.T) {
	pctx := saturdayMorning()

	// Event-type filtering is not implemented; the declared eventTypes are
	// carried but ignored.
	assert.True(t, ruleMatches(rule(models.RuleEventBased, models.RuleConditions{EventTypes: []string{"national"}}), pctx))
	assert.True(t, ruleMatches(rule(models.RuleDemandBased, models.RuleConditions{}), pctx))
}

func TestRuleMatches_UnknownTypeNeverMatches(t *testing.T) {
	pctx := saturdayMorning()
	assert.False(t, ruleMatches(rule(models.RuleType("SOMETHING_NEW"), models.RuleConditions{}), pctx))
}
