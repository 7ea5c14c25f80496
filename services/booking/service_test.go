package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"pirouette/models"
)

// --- fakes ---

type fakeEngine struct {
	quote *models.PriceQuote
	err   error
}

func (f *fakeEngine) Quote(ctx context.Context, req models.QuoteRequest) (*models.PriceQuote, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.quote, nil
}

type fakeServiceRepo struct {
	services map[string]models.Service
}

func (f *fakeServiceRepo) Create(ctx context.Context, svc models.Service) error { return nil }
func (f *fakeServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	return f.GetActiveByID(ctx, id)
}
func (f *fakeServiceRepo) GetActiveByID(ctx context.Context, id string) (*models.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &svc, nil
}
func (f *fakeServiceRepo) ListByStylist(ctx context.Context, stylistID string) ([]models.Service, error) {
	return nil, nil
}
func (f *fakeServiceRepo) Update(ctx context.Context, svc models.Service) error { return nil }
func (f *fakeServiceRepo) Delete(ctx context.Context, stylistID, id string) error {
	return nil
}

type fakeStylistRepo struct {
	stylists map[string]models.Stylist
}

func (f *fakeStylistRepo) Create(ctx context.Context, stylist models.Stylist) error { return nil }
func (f *fakeStylistRepo) GetByID(ctx context.Context, id string) (*models.Stylist, error) {
	s, ok := f.stylists[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &s, nil
}
func (f *fakeStylistRepo) GetByEmail(ctx context.Context, email string) (*models.Stylist, error) {
	return nil, mongo.ErrNoDocuments
}
func (f *fakeStylistRepo) Update(ctx context.Context, stylist models.Stylist) error { return nil }

type fakeDancerRepo struct {
	dancers map[string]models.Dancer
}

func (f *fakeDancerRepo) Create(ctx context.Context, dancer models.Dancer) error { return nil }
func (f *fakeDancerRepo) GetByID(ctx context.Context, id string) (*models.Dancer, error) {
	d, ok := f.dancers[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &d, nil
}
func (f *fakeDancerRepo) GetByEmail(ctx context.Context, email string) (*models.Dancer, error) {
	return nil, mongo.ErrNoDocuments
}
func (f *fakeDancerRepo) Update(ctx context.Context, dancer models.Dancer) error { return nil }

type fakeBookingRepo struct {
	bookings map[string]models.Booking
	statuses map[string]string
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: map[string]models.Booking{},
		statuses: map[string]string{},
	}
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking models.Booking) error {
	f.bookings[booking.ID] = booking
	return nil
}
func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	if status, ok := f.statuses[id]; ok {
		b.Status = status
	}
	return &b, nil
}
func (f *fakeBookingRepo) ListByDancer(ctx context.Context, dancerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.DancerID == dancerID {
			out = append(out, b)
		}
	}
	return out, nil
}
func (f *fakeBookingRepo) ListByStylist(ctx context.Context, stylistID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.StylistID == stylistID {
			out = append(out, b)
		}
	}
	return out, nil
}
func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	f.statuses[id] = status
	return nil
}

type fakePaymentHandler struct {
	lastReq *models.PaymentRequest
	err     error
}

func (f *fakePaymentHandler) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	f.lastReq = &req
	if f.err != nil {
		return nil, f.err
	}
	return &models.Invoice{
		InvoiceID:       "inv-1",
		BookingID:       req.BookingID,
		DancerID:        req.DancerID,
		Amount:          req.Amount,
		PlatformFee:     req.ApplicationFee,
		Currency:        req.Currency,
		PaymentIntentID: "pi_test",
		Status:          "paid",
	}, nil
}

type fakeReminderScheduler struct {
	scheduled int
	err       error
}

func (f *fakeReminderScheduler) ScheduleBookingReminder(booking models.Booking, serviceName string) error {
	f.scheduled++
	return f.err
}

// --- fixtures ---

func testQuote() *models.PriceQuote {
	return &models.PriceQuote{
		BasePrice:     100,
		FinalPrice:    120,
		PriceChange:   20,
		PlatformFee:   18,
		StylistPayout: 102,
		AppliedRules: []models.AppliedRule{
			{RuleID: "rule-1", Name: "Competition weekend", PreviousPrice: 100, NewPrice: 120, PriceChange: 20},
		},
		Context: models.QuoteContext{
			ServiceName: "Competition Updo",
			StylistName: "Ava Laurent",
			EventName:   "Spring Regionals",
			Duration:    90,
		},
	}
}

func newTestBookingService(stripeAccount string) (*DefaultBookingService, *fakeBookingRepo, *fakePaymentHandler, *fakeReminderScheduler) {
	bookings := newFakeBookingRepo()
	payments := &fakePaymentHandler{}
	reminders := &fakeReminderScheduler{}

	svc := &DefaultBookingService{
		PricingEngine: &fakeEngine{quote: testQuote()},
		Services: &fakeServiceRepo{services: map[string]models.Service{
			"svc-1": {ID: "svc-1", StylistID: "sty-1", Name: "Competition Updo", BasePrice: 100, Active: true},
		}},
		Stylists: &fakeStylistRepo{stylists: map[string]models.Stylist{
			"sty-1": {ID: "sty-1", Name: "Ava Laurent", StripeAccountID: stripeAccount},
		}},
		Dancers: &fakeDancerRepo{dancers: map[string]models.Dancer{
			"dan-1": {ID: "dan-1", Name: "Mia Chen"},
		}},
		Bookings:  bookings,
		Payments:  payments,
		Reminders: reminders,
	}
	return svc, bookings, payments, reminders
}

func bookingReq() models.BookingRequest {
	return models.BookingRequest{
		ServiceID:       "svc-1",
		EventID:         "evt-1",
		Date:            "2026-06-13",
		StartTime:       "09:00",
		EndTime:         "10:30",
		PaymentMethodID: "pm_card",
	}
}

// --- tests ---

func TestCreateBooking_ConfirmsAndPersistsTrail(t *testing.T) {
	svc, bookings, payments, reminders := newTestBookingService("acct_123")

	created, err := svc.CreateBooking(context.Background(), "dan-1", bookingReq())
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusConfirmed, created.Status)
	assert.Equal(t, "dan-1", created.DancerID)
	assert.Equal(t, "sty-1", created.StylistID)
	assert.Equal(t, 120.0, created.FinalPrice)
	assert.Equal(t, 18.0, created.PlatformFee)
	assert.Equal(t, 102.0, created.StylistPayout)
	assert.Equal(t, 90, created.Duration)
	require.Len(t, created.AppliedRules, 1)
	assert.Equal(t, "rule-1", created.AppliedRules[0].RuleID)
	assert.Equal(t, "pi_test", created.PaymentIntentID)

	// Charge carried the quote's fee split to the stylist's account.
	require.NotNil(t, payments.lastReq)
	assert.Equal(t, 120.0, payments.lastReq.Amount)
	assert.Equal(t, 18.0, payments.lastReq.ApplicationFee)
	assert.Equal(t, "acct_123", payments.lastReq.StylistAccountID)

	persisted, err := bookings.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.FinalPrice, persisted.FinalPrice)
	assert.Equal(t, 1, reminders.scheduled)
}

func TestCreateBooking_StylistNotOnboarded(t *testing.T) {
	svc, bookings, payments, _ := newTestBookingService("")

	_, err := svc.CreateBooking(context.Background(), "dan-1", bookingReq())
	var payErr *PaymentError
	require.ErrorAs(t, err, &payErr)

	assert.Nil(t, payments.lastReq)
	assert.Empty(t, bookings.bookings)
}

func TestCreateBooking_PaymentDeclinedNothingPersisted(t *testing.T) {
	svc, bookings, payments, reminders := newTestBookingService("acct_123")
	payments.err = NewPaymentError("card declined")

	_, err := svc.CreateBooking(context.Background(), "dan-1", bookingReq())
	var payErr *PaymentError
	require.ErrorAs(t, err, &payErr)

	assert.Empty(t, bookings.bookings)
	assert.Zero(t, reminders.scheduled)
}

func TestCreateBooking_UnknownDancer(t *testing.T) {
	svc, _, payments, _ := newTestBookingService("acct_123")

	_, err := svc.CreateBooking(context.Background(), "dan-unknown", bookingReq())
	require.Error(t, err)
	assert.Nil(t, payments.lastReq)
}

func TestCreateBooking_ReminderFailureDoesNotFailBooking(t *testing.T) {
	svc, _, _, reminders := newTestBookingService("acct_123")
	reminders.err = errors.New("queue unavailable")

	created, err := svc.CreateBooking(context.Background(), "dan-1", bookingReq())
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, created.Status)
	assert.Equal(t, 1, reminders.scheduled)
}

func TestCancelBooking(t *testing.T) {
	svc, bookings, _, _ := newTestBookingService("acct_123")

	created, err := svc.CreateBooking(context.Background(), "dan-1", bookingReq())
	require.NoError(t, err)

	t.Run("WrongDancerRejected", func(t *testing.T) {
		err := svc.CancelBooking(context.Background(), "dan-2", created.ID)
		require.Error(t, err)
	})

	t.Run("OwnerCancels", func(t *testing.T) {
		require.NoError(t, svc.CancelBooking(context.Background(), "dan-1", created.ID))
		assert.Equal(t, models.BookingStatusCancelled, bookings.statuses[created.ID])
	})

	t.Run("CancelTwiceIsIdempotent", func(t *testing.T) {
		require.NoError(t, svc.CancelBooking(context.Background(), "dan-1", created.ID))
	})

	t.Run("UnknownBooking", func(t *testing.T) {
		err := svc.CancelBooking(context.Background(), "dan-1", "missing")
		require.Error(t, err)
	})
}
