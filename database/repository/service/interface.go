// File: database/repository/service/interface.go
package serviceRepo

import (
	"context"

	"pirouette/database"
	"pirouette/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ServiceRepository interface {
	Create(ctx context.Context, svc models.Service) error
	GetByID(ctx context.Context, id string) (*models.Service, error)
	GetActiveByID(ctx context.Context, id string) (*models.Service, error)
	ListByStylist(ctx context.Context, stylistID string) ([]models.Service, error)
	Update(ctx context.Context, svc models.Service) error
	Delete(ctx context.Context, stylistID, id string) error
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo constructs a new MongoDB ServiceRepository.
func NewMongoServiceRepo() ServiceRepository {
	db := database.MongoClient.Database("pirouette")
	return &mongoServiceRepo{
		coll: db.Collection("services"),
	}
}
