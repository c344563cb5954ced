// File: database/repository/catalog/crud.go
package catalogRepo

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

func (r *mongoCatalogRepo) CreatePackage(ctx context.Context, pkg *models.ServicePackage) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if pkg.ID == "" {
		pkg.ID = uuid.New().String()
	}
	now := time.Now()
	pkg.CreatedAt = now
	pkg.UpdatedAt = now

	_, err := r.packages.InsertOne(ctx, pkg)
	return err
}

func (r *mongoCatalogRepo) GetPackageByID(ctx context.Context, id string) (*models.ServicePackage, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var pkg models.ServicePackage
	err := r.packages.FindOne(ctx, bson.M{"id": id}).Decode(&pkg)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *mongoCatalogRepo) ListPackages(ctx context.Context, activeOnly bool) ([]models.ServicePackage, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}})
	cursor, err := r.packages.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var packages []models.ServicePackage
	if err := cursor.All(ctx, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *mongoCatalogRepo) UpdatePackage(ctx context.Context, pkg *models.ServicePackage) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	pkg.UpdatedAt = time.Now()
	res, err := r.packages.ReplaceOne(ctx, bson.M{"id": pkg.ID}, pkg)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoCatalogRepo) DeletePackage(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.packages.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoCatalogRepo) CreateAddOn(ctx context.Context, addOn *models.AddOnService) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if addOn.ID == "" {
		addOn.ID = uuid.New().String()
	}
	now := time.Now()
	addOn.CreatedAt = now
	addOn.UpdatedAt = now

	_, err := r.addOns.InsertOne(ctx, addOn)
	return err
}

func (r *mongoCatalogRepo) GetAddOnByID(ctx context.Context, id string) (*models.AddOnService, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var addOn models.AddOnService
	err := r.addOns.FindOne(ctx, bson.M{"id": id}).Decode(&addOn)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &addOn, nil
}

func (r *mongoCatalogRepo) GetAddOnsByIDs(ctx context.Context, ids []string) ([]models.AddOnService, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.addOns.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var addOns []models.AddOnService
	if err := cursor.All(ctx, &addOns); err != nil {
		return nil, err
	}
	return addOns, nil
}

func (r *mongoCatalogRepo) ListAddOns(ctx context.Context, activeOnly bool) ([]models.AddOnService, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.addOns.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var addOns []models.AddOnService
	if err := cursor.All(ctx, &addOns); err != nil {
		return nil, err
	}
	return addOns, nil
}

func (r *mongoCatalogRepo) UpdateAddOn(ctx context.Context, addOn *models.AddOnService) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	addOn.UpdatedAt = time.Now()
	res, err := r.addOns.ReplaceOne(ctx, bson.M{"id": addOn.ID}, addOn)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoCatalogRepo) DeleteAddOn(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.addOns.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
