// File: database/repository/pricingrule/interface.go
package ruleRepo

import (
	"context"
	"log"

	"pirouette/database"
	"pirouette/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type PricingRuleRepository interface {
	Create(ctx context.Context, rule models.PricingRule) error
	GetByID(ctx context.Context, id string) (*models.PricingRule, error)
	// ListActiveByService returns active rules for a service ordered by
	// priority descending, ties broken by creation time ascending. The order
	// is the evaluation order of the pricing engine and must be deterministic.
	ListActiveByService(ctx context.Context, serviceID string) ([]models.PricingRule, error)
	ListByService(ctx context.Context, serviceID string) ([]models.PricingRule, error)
	Update(ctx context.Context, rule models.PricingRule) error
	Delete(ctx context.Context, serviceID, id string) error
}

type mongoRuleRepo struct {
	coll *mongo.Collection
}

// NewMongoPricingRuleRepo constructs a new MongoDB PricingRuleRepository.
func NewMongoPricingRuleRepo() PricingRuleRepository {
	db := database.MongoClient.Database("pirouette")
	repo := &mongoRuleRepo{
		coll: db.Collection("pricing_rules"),
	}
	if err := repo.EnsureIndexes(context.Background()); err != nil {
		log.Printf("pricing rule index creation failed: %v", err)
	}
	return repo
}
