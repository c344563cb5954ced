// File: database/repository/property/crud.go
package propertyRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lawnly/models"
)

const queryTimeout = 5 * time.Second

func (r *mongoPropertyRepo) Create(ctx context.Context, property *models.Property) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if property.ID == "" {
		property.ID = uuid.New().String()
	}
	now := time.Now()
	property.CreatedAt = now
	property.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, property)
	return err
}

func (r *mongoPropertyRepo) GetByID(ctx context.Context, id string) (*models.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var property models.Property
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&property)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *mongoPropertyRepo) GetByUserID(ctx context.Context, userID string) ([]models.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	// Primary property first, then most recently added.
	opts := options.Find().SetSort(bson.D{
		{Key: "is_primary", Value: -1},
		{Key: "created_at", Value: -1},
	})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *mongoPropertyRepo) Update(ctx context.Context, property *models.Property) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	property.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": property.ID}, property)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoPropertyRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoPropertyRepo) CountByUserID(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return r.coll.CountDocuments(ctx, bson.M{"user_id": userID})
}
