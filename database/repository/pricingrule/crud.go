// File: database/repository/pricingrule/crud.go
package ruleRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pirouette/models"
)

// validateRule enforces the write-boundary invariants: a rule's conditions
// must decode to the shape its type implies and priority stays within 0-100.
// Quote evaluation never re-validates; a stored rule is trusted.
func validateRule(rule models.PricingRule) error {
	if rule.ServiceID == "" {
		return fmt.Errorf("rule %q has no serviceId", rule.ID)
	}
	if !rule.RuleType.Known() {
		return fmt.Errorf("unknown rule type %q", rule.RuleType)
	}
	if rule.ModifierType != models.ModifierPercentage && rule.ModifierType != models.ModifierFixedAmount {
		return fmt.Errorf("unknown modifier type %q", rule.ModifierType)
	}
	if rule.Priority < 0 || rule.Priority > 100 {
		return fmt.Errorf("priority %d out of range 0-100", rule.Priority)
	}
	return rule.Conditions.Validate(rule.RuleType)
}

func (r *mongoRuleRepo) Create(ctx context.Context, rule models.PricingRule) error {
	if err := validateRule(rule); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, rule)
	return err
}

func (r *mongoRuleRepo) GetByID(ctx context.Context, id string) (*models.PricingRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rule models.PricingRule
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&rule); err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *mongoRuleRepo) ListActiveByService(ctx context.Context, serviceID string) ([]models.PricingRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"serviceId": serviceID, "isActive": true}
	opts := options.Find().SetSort(bson.D{
		{Key: "priority", Value: -1},
		{Key: "createdAt", Value: 1},
	})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rules []models.PricingRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *mongoRuleRepo) ListByService(ctx context.Context, serviceID string) ([]models.PricingRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "priority", Value: -1},
		{Key: "createdAt", Value: 1},
	})
	cursor, err := r.coll.Find(ctx, bson.M{"serviceId": serviceID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rules []models.PricingRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *mongoRuleRepo) Update(ctx context.Context, rule models.PricingRule) error {
	if err := validateRule(rule); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rule.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": rule.ID, "serviceId": rule.ServiceID}, rule)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoRuleRepo) Delete(ctx context.Context, serviceID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "serviceId": serviceID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
