// File: database/repository/account/crud.go
package accountRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"pirouette/models"
)

func (r *mongoDancerRepo) Create(ctx context.Context, dancer models.Dancer) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, dancer)
	return err
}

func (r *mongoDancerRepo) GetByID(ctx context.Context, id string) (*models.Dancer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var dancer models.Dancer
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&dancer); err != nil {
		return nil, err
	}
	return &dancer, nil
}

func (r *mongoDancerRepo) GetByEmail(ctx context.Context, email string) (*models.Dancer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var dancer models.Dancer
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&dancer); err != nil {
		return nil, err
	}
	return &dancer, nil
}

func (r *mongoDancerRepo) Update(ctx context.Context, dancer models.Dancer) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	dancer.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": dancer.ID}, dancer)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoStylistRepo) Create(ctx context.Context, stylist models.Stylist) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, stylist)
	return err
}

func (r *mongoStylistRepo) GetByID(ctx context.Context, id string) (*models.Stylist, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var stylist models.Stylist
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&stylist); err != nil {
		return nil, err
	}
	return &stylist, nil
}

func (r *mongoStylistRepo) GetByEmail(ctx context.Context, email string) (*models.Stylist, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var stylist models.Stylist
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&stylist); err != nil {
		return nil, err
	}
	return &stylist, nil
}

func (r *mongoStylistRepo) Update(ctx context.Context, stylist models.Stylist) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	stylist.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": stylist.ID}, stylist)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
