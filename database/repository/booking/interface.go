// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"pirouette/database"
	"pirouette/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByDancer(ctx context.Context, dancerID string) ([]models.Booking, error)
	ListByStylist(ctx context.Context, stylistID string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("pirouette")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
