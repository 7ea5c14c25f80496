package booking

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"

	"pirouette/models"
)

// PaymentHandler charges a dancer for a booking and routes the stylist's
// share to their connected account.
type PaymentHandler interface {
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
}

// StripePaymentHandler implements PaymentHandler via Stripe Connect
// destination charges: the platform fee stays with us, the remainder is
// transferred to the stylist's account.
type StripePaymentHandler struct {
	logger *zap.Logger
}

func NewStripePaymentHandler(logger *zap.Logger) *StripePaymentHandler {
	return &StripePaymentHandler{logger: logger}
}

func (h *StripePaymentHandler) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if req.Amount <= 0 {
		return nil, NewPaymentError("invalid payment amount")
	}
	if req.PaymentMethodID == "" {
		return nil, NewPaymentError("missing payment method")
	}
	if req.StylistAccountID == "" {
		return nil, NewPaymentError("missing stylist connected account")
	}

	params := &stripe.PaymentIntentParams{
		Amount:               stripe.Int64(toMinorUnits(req.Amount)),
		Currency:             stripe.String(req.Currency),
		PaymentMethod:        stripe.String(req.PaymentMethodID),
		Confirm:              stripe.Bool(true),
		ApplicationFeeAmount: stripe.Int64(toMinorUnits(req.ApplicationFee)),
		TransferData: &stripe.PaymentIntentTransferDataParams{
			Destination: stripe.String(req.StylistAccountID),
		},
		Description: stripe.String(req.Description),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		h.logger.Error("stripe payment intent failed",
			zap.String("bookingId", req.BookingID),
			zap.Error(err))
		return nil, NewPaymentError("charge failed: " + err.Error())
	}

	status := "pending"
	if pi.Status == stripe.PaymentIntentStatusSucceeded {
		status = "paid"
	}

	now := time.Now()
	inv := &models.Invoice{
		InvoiceID:       uuid.New().String(),
		BookingID:       req.BookingID,
		DancerID:        req.DancerID,
		Amount:          req.Amount,
		PlatformFee:     req.ApplicationFee,
		Currency:        req.Currency,
		PaymentIntentID: pi.ID,
		Status:          status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	h.logger.Info("payment processed",
		zap.String("invoice", inv.InvoiceID),
		zap.String("paymentIntent", pi.ID),
		zap.String("status", status))
	return inv, nil
}

// toMinorUnits converts a major-unit amount to cents for the Stripe API.
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
