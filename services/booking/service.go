package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"pirouette/models"
	"pirouette/utils"
)

// CreateBooking runs the full flow: price the request through the engine,
// charge the dancer with the platform fee split the quote computed, persist
// the booking with its applied-rule trail, and schedule a reminder.
// The quote itself has no side effects; nothing is written until the charge
// succeeds.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, dancerID string, req models.BookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	quote, err := s.PricingEngine.Quote(ctx, models.QuoteRequest{
		ServiceID:          req.ServiceID,
		EventID:            req.EventID,
		Date:               req.Date,
		StartTime:          req.StartTime,
		EndTime:            req.EndTime,
		AdvanceBookingDays: req.AdvanceBookingDays,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.Dancers.GetByID(ctx, dancerID); err != nil {
		return nil, fmt.Errorf("fetch dancer: %w", err)
	}
	svc, err := s.Services.GetActiveByID(ctx, req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("fetch service: %w", err)
	}
	stylist, err := s.Stylists.GetByID(ctx, svc.StylistID)
	if err != nil {
		return nil, fmt.Errorf("fetch stylist: %w", err)
	}
	if stylist.StripeAccountID == "" {
		return nil, NewPaymentError("stylist has not completed payment onboarding")
	}

	bookingID := uuid.New().String()
	invoice, err := s.Payments.ProcessPayment(ctx, models.PaymentRequest{
		BookingID:        bookingID,
		DancerID:         dancerID,
		StylistAccountID: stylist.StripeAccountID,
		Amount:           quote.FinalPrice,
		ApplicationFee:   quote.PlatformFee,
		Currency:         "usd",
		PaymentMethodID:  req.PaymentMethodID,
		Description:      fmt.Sprintf("%s at %s", svc.Name, quote.Context.EventName),
	})
	if err != nil {
		logger.Warn("booking payment failed",
			zap.String("dancerId", dancerID),
			zap.String("serviceId", req.ServiceID),
			zap.Error(err))
		return nil, err
	}

	now := time.Now()
	booking := models.Booking{
		ID:              bookingID,
		DancerID:        dancerID,
		StylistID:       stylist.ID,
		ServiceID:       svc.ID,
		EventID:         req.EventID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Duration:        quote.Context.Duration,
		BasePrice:       quote.BasePrice,
		FinalPrice:      quote.FinalPrice,
		PlatformFee:     quote.PlatformFee,
		StylistPayout:   quote.StylistPayout,
		AppliedRules:    quote.AppliedRules,
		PaymentIntentID: invoice.PaymentIntentID,
		Status:          models.BookingStatusConfirmed,
		Notes:           req.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.Bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("persist booking: %w", err)
	}

	// Reminder scheduling is best effort; a queue hiccup must not fail a
	// paid booking.
	if s.Reminders != nil {
		if err := s.Reminders.ScheduleBookingReminder(booking, svc.Name); err != nil {
			logger.Warn("failed to schedule booking reminder",
				zap.String("bookingId", booking.ID),
				zap.Error(err))
		}
	}

	logger.Info("booking confirmed",
		zap.String("bookingId", booking.ID),
		zap.String("dancerId", dancerID),
		zap.Float64("finalPrice", booking.FinalPrice))

	return &booking, nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return s.Bookings.GetByID(ctx, id)
}

func (s *DefaultBookingService) ListDancerBookings(ctx context.Context, dancerID string) ([]models.Booking, error) {
	return s.Bookings.ListByDancer(ctx, dancerID)
}

func (s *DefaultBookingService) ListStylistBookings(ctx context.Context, stylistID string) ([]models.Booking, error) {
	return s.Bookings.ListByStylist(ctx, stylistID)
}

func (s *DefaultBookingService) CancelBooking(ctx context.Context, dancerID, id string) error {
	booking, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("booking %q not found", id)
		}
		return err
	}
	if booking.DancerID != dancerID {
		return fmt.Errorf("booking %q does not belong to dancer %q", id, dancerID)
	}
	if booking.Status == models.BookingStatusCancelled {
		return nil
	}
	return s.Bookings.UpdateStatus(ctx, id, models.BookingStatusCancelled)
}
