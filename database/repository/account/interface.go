// File: database/repository/account/interface.go
package accountRepo

import (
	"context"

	"pirouette/database"
	"pirouette/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type DancerRepository interface {
	Create(ctx context.Context, dancer models.Dancer) error
	GetByID(ctx context.Context, id string) (*models.Dancer, error)
	GetByEmail(ctx context.Context, email string) (*models.Dancer, error)
	Update(ctx context.Context, dancer models.Dancer) error
}

type StylistRepository interface {
	Create(ctx context.Context, stylist models.Stylist) error
	GetByID(ctx context.Context, id string) (*models.Stylist, error)
	GetByEmail(ctx context.Context, email string) (*models.Stylist, error)
	Update(ctx context.Context, stylist models.Stylist) error
}

type mongoDancerRepo struct {
	coll *mongo.Collection
}

type mongoStylistRepo struct {
	coll *mongo.Collection
}

// NewMongoDancerRepo constructs a new MongoDB DancerRepository.
func NewMongoDancerRepo() DancerRepository {
	db := database.MongoClient.Database("pirouette")
	return &mongoDancerRepo{
		coll: db.Collection("dancers"),
	}
}

// NewMongoStylistRepo constructs a new MongoDB StylistRepository.
func NewMongoStylistRepo() StylistRepository {
	db := database.MongoClient.Database("pirouette")
	return &mongoStylistRepo{
		coll: db.Collection("stylists"),
	}
}
