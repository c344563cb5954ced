// File: database/repository/catalog/interface.go
package catalogRepo

import (
	"context"

	"lawnly/database"
	"lawnly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository stores the bookable service catalog: packages and
// add-on services. Admin screens write it; the booking flow reads it.
type CatalogRepository interface {
	CreatePackage(ctx context.Context, pkg *models.ServicePackage) error
	GetPackageByID(ctx context.Context, id string) (*models.ServicePackage, error)
	ListPackages(ctx context.Context, activeOnly bool) ([]models.ServicePackage, error)
	UpdatePackage(ctx context.Context, pkg *models.ServicePackage) error
	DeletePackage(ctx context.Context, id string) error

	CreateAddOn(ctx context.Context, addOn *models.AddOnService) error
	GetAddOnByID(ctx context.Context, id string) (*models.AddOnService, error)
	GetAddOnsByIDs(ctx context.Context, ids []string) ([]models.AddOnService, error)
	ListAddOns(ctx context.Context, activeOnly bool) ([]models.AddOnService, error)
	UpdateAddOn(ctx context.Context, addOn *models.AddOnService) error
	DeleteAddOn(ctx context.Context, id string) error
}

type mongoCatalogRepo struct {
	packages *mongo.Collection
	addOns   *mongo.Collection
}

// NewMongoCatalogRepo constructs a new MongoDB CatalogRepository.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.DB()
	return &mongoCatalogRepo{
		packages: db.Collection("service_packages"),
		addOns:   db.Collection("add_on_services"),
	}
}
