// File: database/repository/crew/interface.go
package crewRepo

import (
	"context"

	"lawnly/database"
	"lawnly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CrewRepository stores crew members managed through the admin back office.
type CrewRepository interface {
	Create(ctx context.Context, member *models.CrewMember) error
	GetByID(ctx context.Context, id string) (*models.CrewMember, error)
	List(ctx context.Context, activeOnly bool) ([]models.CrewMember, error)
	Update(ctx context.Context, member *models.CrewMember) error
	Delete(ctx context.Context, id string) error
}

type mongoCrewRepo struct {
	coll *mongo.Collection
}

// NewMongoCrewRepo constructs a new MongoDB CrewRepository.
func NewMongoCrewRepo() CrewRepository {
	return &mongoCrewRepo{coll: database.DB().Collection("crew_members")}
}
