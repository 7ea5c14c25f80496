package pricing

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"pirouette/models"
)

// --- fakes ---

type fakeServiceRepo struct {
	svc *models.Service
}

func (f *fakeServiceRepo) Create(ctx context.Context, svc models.Service) error { return nil }
func (f *fakeServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	if f.svc == nil || f.svc.ID != id {
		return nil, mongo.ErrNoDocuments
	}
	return f.svc, nil
}
func (f *fakeServiceRepo) GetActiveByID(ctx context.Context, id string) (*models.Service, error) {
	if f.svc == nil || f.svc.ID != id || !f.svc.Active {
		return nil, mongo.ErrNoDocuments
	}
	return f.svc, nil
}
func (f *fakeServiceRepo) ListByStylist(ctx context.Context, stylistID string) ([]models.Service, error) {
	return nil, nil
}
func (f *fakeServiceRepo) Update(ctx context.Context, svc models.Service) error  { return nil }
func (f *fakeServiceRepo) Delete(ctx context.Context, stylistID, id string) error { return nil }

type fakeEventRepo struct {
	event *models.Event
}

func (f *fakeEventRepo) Create(ctx context.Context, event models.Event) error { return nil }
func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*models.Event, error) {
	if f.event == nil || f.event.ID != id {
		return nil, mongo.ErrNoDocuments
	}
	return f.event, nil
}
func (f *fakeEventRepo) GetActiveByID(ctx context.Context, id string) (*models.Event, error) {
	if f.event == nil || f.event.ID != id || !f.event.Active {
		return nil, mongo.ErrNoDocuments
	}
	return f.event, nil
}
func (f *fakeEventRepo) ListUpcoming(ctx context.Context, fromDate string) ([]models.Event, error) {
	return nil, nil
}
func (f *fakeEventRepo) Update(ctx context.Context, event models.Event) error { return nil }

type fakeStylistRepo struct {
	stylist *models.Stylist
}

func (f *fakeStylistRepo) Create(ctx context.Context, stylist models.Stylist) error { return nil }
func (f *fakeStylistRepo) GetByID(ctx context.Context, id string) (*models.Stylist, error) {
	if f.stylist == nil || f.stylist.ID != id {
		return nil, mongo.ErrNoDocuments
	}
	return f.stylist, nil
}
func (f *fakeStylistRepo) GetByEmail(ctx context.Context, email string) (*models.Stylist, error) {
	return nil, mongo.ErrNoDocuments
}
func (f *fakeStylistRepo) Update(ctx context.Context, stylist models.Stylist) error { return nil }

type fakeRuleRepo struct {
	rules []models.PricingRule
}

// ListActiveByService mirrors the mongo repository's contract: active rules
// only, priority descending, creation time ascending.
func (f *fakeRuleRepo) ListActiveByService(ctx context.Context, serviceID string) ([]models.PricingRule, error) {
	var out []models.PricingRule
	for _, r := range f.rules {
		if r.ServiceID == serviceID && r.IsActive {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
func (f *fakeRuleRepo) Create(ctx context.Context, rule models.PricingRule) error { return nil }
func (f *fakeRuleRepo) GetByID(ctx context.Context, id string) (*models.PricingRule, error) {
	return nil, mongo.ErrNoDocuments
}
func (f *fakeRuleRepo) ListByService(ctx context.Context, serviceID string) ([]models.PricingRule, error) {
	return f.ListActiveByService(ctx, serviceID)
}
func (f *fakeRuleRepo) Update(ctx context.Context, rule models.PricingRule) error { return nil }
func (f *fakeRuleRepo) Delete(ctx context.Context, serviceID, id string) error    { return nil }

func newTestEngine(basePrice float64, rules ...models.PricingRule) *DefaultPricingEngine {
	return &DefaultPricingEngine{
		Services: &fakeServiceRepo{svc: &models.Service{
			ID: "svc-1", StylistID: "sty-1", Name: "Competition Updo",
			BasePrice: basePrice, Active: true,
		}},
		Stylists: &fakeStylistRepo{stylist: &models.Stylist{ID: "sty-1", Name: "Ava Laurent"}},
		Events: &fakeEventRepo{event: &models.Event{
			ID: "evt-1", Name: "Spring Regionals", EventType: models.EventTypeRegional, Active: true,
		}},
		Rules:     &fakeRuleRepo{rules: rules},
		FeeRate:   0.15,
		FloorRate: 0.20,
		Now:       func() time.Time { return time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC) },
	}
}

func quoteReq() models.QuoteRequest {
	return models.QuoteRequest{
		ServiceID: "svc-1",
		EventID:   "evt-1",
		Date:      "2026-06-13", // a Saturday
		StartTime: "09:00",
		EndTime:   "10:30",
	}
}

func intPtr(v int) *int { return &v }

// --- tests ---

func TestQuote_NoRules_BasePriceIdentity(t *testing.T) {
	engine := newTestEngine(100)

	quote, err := engine.Quote(context.Background(), quoteReq())
	require.NoError(t, err)

	assert.Equal(t, 100.0, quote.BasePrice)
	assert.Equal(t, 100.0, quote.FinalPrice)
	assert.Equal(t, 0.0, quote.PriceChange)
	assert.Empty(t, quote.AppliedRules)
	assert.Equal(t, 15.0, quote.PlatformFee)
	assert.Equal(t, 85.0, quote.StylistPayout)
	assert.Equal(t, "Competition Updo", quote.Context.ServiceName)
	assert.Equal(t, "Ava Laurent", quote.Context.StylistName)
	assert.Equal(t, "Spring Regionals", quote.Context.EventName)
	assert.Equal(t, 90, quote.Context.Duration)
}

func TestQuote_FixedAmountComposition(t *testing.T) {
	engine := newTestEngine(100, models.PricingRule{
		ID: "r1", ServiceID: "svc-1", Name: "Event weekend surcharge",
		RuleType: models.RuleDemandBased, ModifierType: models.ModifierFixedAmount,
		ModifierValue: 25, Priority: 50, IsActive: true,
	})

	quote, err := engine.Quote(context.Background(), quoteReq())
	require.NoError(t, err)

	assert.Equal(t, 125.0, quote.FinalPrice)
	require.Len(t, quote.AppliedRules, 1)
	assert.Equal(t, 25.0, quote.AppliedRules[0].PriceChange)
	assert.Equal(t, 100.0, quote.AppliedRules[0].PreviousPrice)
	assert.Equal(t, 125.0, quote.AppliedRules[0].NewPrice)
}

func TestQuote_AdvanceBookingDiscount(t *testing.T) {
	engine := newTestEngine(80, models.PricingRule{
		ID: "r1", ServiceID: "svc-1", Name: "Early bird",
		RuleType: models.RuleAdvanceBooking, ModifierType: models.ModifierPercentage,
		ModifierValue: -0.10, Priority: 40, IsActive: true,
		Conditions: models.RuleConditions{MinDays: intPtr(30)},
	})

	req := quoteReq()
	req.AdvanceBookingDays = intPtr(45)
	quote, err := engine.Quote(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 72.0, quote.FinalPrice)
	require.Len(t, quote.AppliedRules, 1)
	assert.Equal(t, 45, quote.Context.AdvanceBookingDays)
}

func TestQuote_SeasonalRuleDoesNotMatch(t *testing.T) {
	engine := newTestEngine(80, models.PricingRule{
		ID: "r1", ServiceID: "svc-1", Name: "Nationals season",
		RuleType: models.RuleSeasonal, ModifierType: models.ModifierPercentage,
		ModifierValue: 0.20, Priority: 40, IsActive: true,
		Conditions: models.RuleConditions{Months: []int{12}},
	})

	quote, err := engine.Quote(context.Background(), quoteReq()) // June booking
	require.NoError(t, err)

	assert.Equal(t, 80.0, quote.FinalPrice)
	assert.Empty(t, quote.AppliedRules)
}

func TestQuote_PriorityOrderingDrivesTrail(t *testing.T) {
	engine := newTestEngine(100,
		models.PricingRule{
			ID: "low", ServiceID: "svc-1", Name: "B",
			RuleType: models.RuleDemandBased, ModifierType: models.ModifierPercentage,
			ModifierValue: 0.10, Priority: 5, IsActive: true,
		},
		models.PricingRule{
			ID: "high", ServiceID: "svc-1", Name: "A",
			RuleType: models.RuleDemandBased, ModifierType: models.ModifierPercentage,
			ModifierValue: 0.20, Priority: 10, IsActive: true,
		},
	)

	quote, err := engine.Quote(context.Background(), quoteReq())
	require.NoError(t, err)

	assert.Equal(t, 132.0, quote.FinalPrice)
	require.Len(t, quote.AppliedRules, 2)
	// Higher priority applies first and its effect compounds into the second.
	assert.Equal(t, "high", quote.AppliedRules[0].RuleID)
	assert.Equal(t, 100.0, quote.AppliedRules[0].PreviousPrice)
	assert.Equal(t, 120.0, quote.AppliedRules[0].NewPrice)
	assert.Equal(t, "low", quote.AppliedRules[1].RuleID)
	assert.Equal(t, 120.0, quote.AppliedRules[1].PreviousPrice)
	assert.Equal(t, 132.0, quote.AppliedRules[1].NewPrice)
}

func TestQuote_InactiveAndNonMatchingRulesExcluded(t *testing.T) {
	engine := newTestEngine(100,
		models.PricingRule{
			ID: "inactive", ServiceID: "svc-1", Name: "Disabled",
			RuleType: models.RuleDemandBased, ModifierType: models.ModifierPercentage,
			ModifierValue: 0.50, Priority: 90, IsActive: false,
		},
		models.PricingRule{
			ID: "wrong-day", ServiceID: "svc-1", Name: "Monday only",
			RuleType: models.RuleTimeBased, ModifierType: models.ModifierPercentage,
			ModifierValue: 0.30, Priority: 80, IsActive: true,
			Conditions: models.RuleConditions{DaysOfWeek: []int{1}}, // booking is a Saturday
		},
	)

	quote, err := engine.Quote(context.Background(), quoteReq())
	require.NoError(t, err)

	assert.Equal(t, 100.0, quote.FinalPrice)
	assert.Empty(t, quote.AppliedRules)
}

func TestQuote_StackedDiscountsAndFloorClamp(t *testing.T) {
	half := func(id string, prio int) models.PricingRule {
		return models.PricingRule{
			ID: id, ServiceID: "svc-1", Name: "Half off " + id,
			RuleType: models.RuleDemandBased, ModifierType: models.ModifierPercentage,
			ModifierValue: -0.50, Priority: prio, IsActive: true,
		}
	}

	// Two halvings compound to 25, above the 20 floor.
	engine := newTestEngine(100, half("h1", 30), half("h2", 20))
	quote, err := engine.Quote(context.Background(), quoteReq())
	require.NoError(t, err)
	assert.Equal(t, 25.0, quote.FinalPrice)

	// A third halving would reach 12.50; the floor holds at 20.
	engine = newTestEngine(100, half("h1", 30), half("h2", 20), half("h3", 10))
	quote, err = engine.Quote(context.Background(), quoteReq())
	require.NoError(t, err)
	assert.Equal(t, 20.0, quote.FinalPrice)
	assert.Len(t, quote.AppliedRules, 3)
}

func TestQuote_UnknownRuleTypeSkipped(t *testing.T) {
	engine := newTestEngine(100,
		models.PricingRule{
			ID: "corrupt", ServiceID: "svc-1", Name: "Mystery",
			RuleType: models.RuleType("UNKNOWN_TYPE"), ModifierType: models.ModifierPercentage,
			ModifierValue: 5.0, Priority: 99, IsActive: true,
		},
		models.PricingRule{
			ID: "valid", ServiceID: "svc-1", Name: "Weekend bump",
			RuleType: models.RuleTimeBased, ModifierType: models.ModifierPercentage,
			ModifierValue: 0.10, Priority: 10, IsActive: true,
			Conditions: models.RuleConditions{DaysOfWeek: []int{0, 6}},
		},
	)

	quote, err := engine.Quote(context.Background(), quoteReq())
	require.NoError(t, err)

	assert.Equal(t, 110.0, quote.FinalPrice)
	require.Len(t, quote.AppliedRules, 1)
	assert.Equal(t, "valid", quote.AppliedRules[0].RuleID)
}

func TestQuote_FeeSplitInvariant(t *testing.T) {
	engine := newTestEngine(99.99, models.PricingRule{
		ID: "r1", ServiceID: "svc-1", Name: "Odd percentage",
		RuleType: models.RuleDemandBased, ModifierType: models.ModifierPercentage,
		ModifierValue: 0.0733, Priority: 10, IsActive: true,
	})

	quote, err := engine.Quote(context.Background(), quoteReq())
	require.NoError(t, err)

	assert.InDelta(t, quote.FinalPrice, quote.PlatformFee+quote.StylistPayout, 0.01)
	assert.GreaterOrEqual(t, quote.FinalPrice, quote.BasePrice*0.2)
}

func TestQuote_ValidationErrors(t *testing.T) {
	engine := newTestEngine(100)

	tests := []struct {
		name   string
		mutate func(*models.QuoteRequest)
		field  string
	}{
		{"bad date", func(r *models.QuoteRequest) { r.Date = "06/13/2026" }, "date"},
		{"bad start time", func(r *models.QuoteRequest) { r.StartTime = "9am" }, "startTime"},
		{"end before start", func(r *models.QuoteRequest) { r.StartTime = "14:00"; r.EndTime = "13:00" }, "endTime"},
		{"end equals start", func(r *models.QuoteRequest) { r.StartTime = "14:00"; r.EndTime = "14:00" }, "endTime"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := quoteReq()
			tc.mutate(&req)

			_, err := engine.Quote(context.Background(), req)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.NotEmpty(t, verr.Details)
			assert.Equal(t, tc.field, verr.Details[len(verr.Details)-1].Field)
		})
	}
}

func TestQuote_NotFound(t *testing.T) {
	engine := newTestEngine(100)

	req := quoteReq()
	req.ServiceID = "missing"
	_, err := engine.Quote(context.Background(), req)
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "service", nfErr.Resource)

	req = quoteReq()
	req.EventID = "missing"
	_, err = engine.Quote(context.Background(), req)
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "event", nfErr.Resource)
}

func TestQuote_InactiveServiceNotFound(t *testing.T) {
	engine := newTestEngine(100)
	engine.Services.(*fakeServiceRepo).svc.Active = false

	_, err := engine.Quote(context.Background(), quoteReq())
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
}
