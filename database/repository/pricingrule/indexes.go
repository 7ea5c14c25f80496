// File: database/repository/pricingrule/indexes.go
package ruleRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the index backing the engine's ordered rule fetch.
func (r *mongoRuleRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "serviceId", Value: 1},
			{Key: "isActive", Value: 1},
			{Key: "priority", Value: -1},
			{Key: "createdAt", Value: 1},
		},
	})
	return err
}
