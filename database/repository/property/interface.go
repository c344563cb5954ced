// File: database/repository/property/interface.go
package propertyRepo

import (
	"context"

	"lawnly/database"
	"lawnly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PropertyRepository stores customer properties.
type PropertyRepository interface {
	Create(ctx context.Context, property *models.Property) error
	GetByID(ctx context.Context, id string) (*models.Property, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Property, error)
	Update(ctx context.Context, property *models.Property) error
	Delete(ctx context.Context, id string) error
	// CountByUserID reports how many properties the customer already has;
	// the first one booked becomes primary.
	CountByUserID(ctx context.Context, userID string) (int64, error)
}

type mongoPropertyRepo struct {
	coll *mongo.Collection
}

// NewMongoPropertyRepo constructs a new MongoDB PropertyRepository.
func NewMongoPropertyRepo() PropertyRepository {
	return &mongoPropertyRepo{coll: database.DB().Collection("properties")}
}
