package booking

import (
	"context"

	accountRepo "pirouette/database/repository/account"
	bookingRepo "pirouette/database/repository/booking"
	serviceRepo "pirouette/database/repository/service"
	"pirouette/models"
	"pirouette/services/pricing"
	"pirouette/services/tasks"
)

// BookingService manages the booking lifecycle: quote, charge, persist,
// remind.
type BookingService interface {
	CreateBooking(ctx context.Context, dancerID string, req models.BookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListDancerBookings(ctx context.Context, dancerID string) ([]models.Booking, error)
	ListStylistBookings(ctx context.Context, stylistID string) ([]models.Booking, error)
	CancelBooking(ctx context.Context, dancerID, id string) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	PricingEngine pricing.Engine
	Services      serviceRepo.ServiceRepository
	Stylists      accountRepo.StylistRepository
	Dancers       accountRepo.DancerRepository
	Bookings      bookingRepo.BookingRepository
	Payments      PaymentHandler
	Reminders     tasks.ReminderScheduler
}
