package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"pirouette/middleware"
	"pirouette/models"
	"pirouette/services/booking"
	"pirouette/services/pricing"
)

// BookingHandler exposes the booking lifecycle endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBookingHandler books a service at an event for the signed-in dancer.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	dancerID := c.GetString(middleware.ContextAccountID)

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.CreateBooking(context.Background(), dancerID, req)
	if err != nil {
		var verr *pricing.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking request", "details": verr.Details})
			return
		}
		var nfErr *pricing.NotFoundError
		if errors.As(err, &nfErr) {
			c.JSON(http.StatusNotFound, gin.H{"error": nfErr.Error()})
			return
		}
		var payErr *booking.PaymentError
		if errors.As(err, &payErr) {
			c.JSON(http.StatusPaymentRequired, gin.H{"error": payErr.Message})
			return
		}
		h.Logger.Error("booking creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": created})
}

// GetBookingHandler returns a booking visible to its dancer or stylist.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	accountID := c.GetString(middleware.ContextAccountID)
	id := c.Param("id")

	found, err := h.Service.GetBooking(context.Background(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		h.Logger.Error("fetch booking failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch booking"})
		return
	}
	if found.DancerID != accountID && found.StylistID != accountID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": found})
}

// ListMyBookingsHandler lists the signed-in dancer's bookings.
func (h *BookingHandler) ListMyBookingsHandler(c *gin.Context) {
	dancerID := c.GetString(middleware.ContextAccountID)

	bookings, err := h.Service.ListDancerBookings(context.Background(), dancerID)
	if err != nil {
		h.Logger.Error("list bookings failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListStylistBookingsHandler lists bookings against the signed-in stylist.
func (h *BookingHandler) ListStylistBookingsHandler(c *gin.Context) {
	stylistID := c.GetString(middleware.ContextAccountID)

	bookings, err := h.Service.ListStylistBookings(context.Background(), stylistID)
	if err != nil {
		h.Logger.Error("list stylist bookings failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// CancelBookingHandler cancels the dancer's booking.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	dancerID := c.GetString(middleware.ContextAccountID)
	id := c.Param("id")

	if err := h.Service.CancelBooking(context.Background(), dancerID, id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.BookingStatusCancelled})
}
