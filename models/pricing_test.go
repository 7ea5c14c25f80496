package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestRuleConditionsValidate(t *testing.T) {
	tests := []struct {
		name     string
		ruleType RuleType
		cond     RuleConditions
		wantErr  bool
	}{
		{"empty time conditions ok", RuleTimeBased, RuleConditions{}, false},
		{"valid days and window", RuleTimeBased, RuleConditions{
			DaysOfWeek: []int{0, 6}, TimeRange: &HourRange{Start: 17, End: 21},
		}, false},
		{"day out of range", RuleTimeBased, RuleConditions{DaysOfWeek: []int{7}}, true},
		{"inverted hour window", RuleTimeBased, RuleConditions{TimeRange: &HourRange{Start: 20, End: 8}}, true},
		{"advance bounds ok", RuleAdvanceBooking, RuleConditions{MinDays: intPtr(7), MaxDays: intPtr(30)}, false},
		{"advance max below min", RuleAdvanceBooking, RuleConditions{MinDays: intPtr(30), MaxDays: intPtr(7)}, true},
		{"negative minDays", RuleAdvanceBooking, RuleConditions{MinDays: intPtr(-1)}, true},
		{"months ok", RuleSeasonal, RuleConditions{Months: []int{1, 12}}, false},
		{"month out of range", RuleSeasonal, RuleConditions{Months: []int{13}}, true},
		{"duration bounds ok", RuleGroupSize, RuleConditions{MinDuration: intPtr(30), MaxDuration: intPtr(180)}, false},
		{"duration max below min", RuleGroupSize, RuleConditions{MinDuration: intPtr(120), MaxDuration: intPtr(60)}, true},
		{"event based carries types", RuleEventBased, RuleConditions{EventTypes: []string{"national"}}, false},
		{"demand based unconstrained", RuleDemandBased, RuleConditions{}, false},
		{"unknown type rejected at write", RuleType("BOGUS"), RuleConditions{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cond.Validate(tc.ruleType)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRuleTypeKnown(t *testing.T) {
	for _, known := range []RuleType{
		RuleTimeBased, RuleAdvanceBooking, RuleEventBased, RuleSeasonal, RuleGroupSize, RuleDemandBased,
	} {
		assert.True(t, known.Known(), string(known))
	}
	assert.False(t, RuleType("UNKNOWN_TYPE").Known())
}
