// File: database/repository/event/interface.go
package eventRepo

import (
	"context"

	"pirouette/database"
	"pirouette/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type EventRepository interface {
	Create(ctx context.Context, event models.Event) error
	GetByID(ctx context.Context, id string) (*models.Event, error)
	GetActiveByID(ctx context.Context, id string) (*models.Event, error)
	ListUpcoming(ctx context.Context, fromDate string) ([]models.Event, error)
	Update(ctx context.Context, event models.Event) error
}

type mongoEventRepo struct {
	coll *mongo.Collection
}

// NewMongoEventRepo constructs a new MongoDB EventRepository.
func NewMongoEventRepo() EventRepository {
	db := database.MongoClient.Database("pirouette")
	return &mongoEventRepo{
		coll: db.Collection("events"),
	}
}
