package catalog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	catalogRepo "lawnly/database/repository/catalog"
	"lawnly/models"
)

var (
	ErrPackageNotFound = errors.New("service package not found")
	ErrAddOnNotFound   = errors.New("add-on service not found")
)

// Service manages the bookable catalog: service packages and add-ons.
// Listing is public; mutations are admin-only (enforced at the route layer).
type Service interface {
	ListPackages(ctx context.Context, includeInactive bool) ([]models.ServicePackage, error)
	GetPackage(ctx context.Context, id string) (*models.ServicePackage, error)
	CreatePackage(ctx context.Context, pkg *models.ServicePackage) error
	UpdatePackage(ctx context.Context, pkg *models.ServicePackage) error
	DeletePackage(ctx context.Context, id string) error

	ListAddOns(ctx context.Context, includeInactive bool) ([]models.AddOnService, error)
	CreateAddOn(ctx context.Context, addOn *models.AddOnService) error
	UpdateAddOn(ctx context.Context, addOn *models.AddOnService) error
	DeleteAddOn(ctx context.Context, id string) error
}

// DefaultService is the production implementation.
type DefaultService struct {
	Catalog catalogRepo.CatalogRepository
}

// ListPackages returns the catalog ordered by sort order then name.
func (s *DefaultService) ListPackages(ctx context.Context, includeInactive bool) ([]models.ServicePackage, error) {
	packages, err := s.Catalog.ListPackages(ctx, !includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	sort.SliceStable(packages, func(i, j int) bool {
		if packages[i].SortOrder != packages[j].SortOrder {
			return packages[i].SortOrder < packages[j].SortOrder
		}
		return packages[i].Name < packages[j].Name
	})
	return packages, nil
}

// GetPackage returns one package by id.
func (s *DefaultService) GetPackage(ctx context.Context, id string) (*models.ServicePackage, error) {
	pkg, err := s.Catalog.GetPackageByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load package: %w", err)
	}
	if pkg == nil {
		return nil, ErrPackageNotFound
	}
	return pkg, nil
}

// CreatePackage validates and stores a new package.
func (s *DefaultService) CreatePackage(ctx context.Context, pkg *models.ServicePackage) error {
	if err := validatePackage(pkg); err != nil {
		return err
	}
	if err := s.Catalog.CreatePackage(ctx, pkg); err != nil {
		return fmt.Errorf("failed to create package: %w", err)
	}
	return nil
}

// UpdatePackage validates and rewrites an existing package.
func (s *DefaultService) UpdatePackage(ctx context.Context, pkg *models.ServicePackage) error {
	if err := validatePackage(pkg); err != nil {
		return err
	}
	if _, err := s.GetPackage(ctx, pkg.ID); err != nil {
		return err
	}
	if err := s.Catalog.UpdatePackage(ctx, pkg); err != nil {
		return fmt.Errorf("failed to update package: %w", err)
	}
	return nil
}

// DeletePackage removes a package. Existing appointments keep their copy of
// the price, so deletion does not cascade.
func (s *DefaultService) DeletePackage(ctx context.Context, id string) error {
	if _, err := s.GetPackage(ctx, id); err != nil {
		return err
	}
	if err := s.Catalog.DeletePackage(ctx, id); err != nil {
		return fmt.Errorf("failed to delete package: %w", err)
	}
	return nil
}

// ListAddOns returns the add-on catalog ordered by name.
func (s *DefaultService) ListAddOns(ctx context.Context, includeInactive bool) ([]models.AddOnService, error) {
	addOns, err := s.Catalog.ListAddOns(ctx, !includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list add-ons: %w", err)
	}
	sort.SliceStable(addOns, func(i, j int) bool { return addOns[i].Name < addOns[j].Name })
	return addOns, nil
}

// CreateAddOn validates and stores a new add-on.
func (s *DefaultService) CreateAddOn(ctx context.Context, addOn *models.AddOnService) error {
	if err := validateAddOn(addOn); err != nil {
		return err
	}
	if err := s.Catalog.CreateAddOn(ctx, addOn); err != nil {
		return fmt.Errorf("failed to create add-on: %w", err)
	}
	return nil
}

// UpdateAddOn validates and rewrites an existing add-on.
func (s *DefaultService) UpdateAddOn(ctx context.Context, addOn *models.AddOnService) error {
	if err := validateAddOn(addOn); err != nil {
		return err
	}
	existing, err := s.Catalog.GetAddOnByID(ctx, addOn.ID)
	if err != nil {
		return fmt.Errorf("failed to load add-on: %w", err)
	}
	if existing == nil {
		return ErrAddOnNotFound
	}
	if err := s.Catalog.UpdateAddOn(ctx, addOn); err != nil {
		return fmt.Errorf("failed to update add-on: %w", err)
	}
	return nil
}

// DeleteAddOn removes an add-on.
func (s *DefaultService) DeleteAddOn(ctx context.Context, id string) error {
	existing, err := s.Catalog.GetAddOnByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load add-on: %w", err)
	}
	if existing == nil {
		return ErrAddOnNotFound
	}
	if err := s.Catalog.DeleteAddOn(ctx, id); err != nil {
		return fmt.Errorf("failed to delete add-on: %w", err)
	}
	return nil
}

func validatePackage(pkg *models.ServicePackage) error {
	if strings.TrimSpace(pkg.Name) == "" {
		return models.Invalid("package name is required")
	}
	if pkg.BasePrice <= 0 || math.IsNaN(pkg.BasePrice) || math.IsInf(pkg.BasePrice, 0) {
		return models.Invalid("base price must be a positive amount")
	}
	for category, multiplier := range pkg.PricingTiers {
		switch category {
		case models.LotSizeSmall, models.LotSizeMedium, models.LotSizeLarge, models.LotSizeXLarge:
		default:
			return models.Invalid("unknown pricing tier %q", category)
		}
		if multiplier <= 0 || math.IsNaN(multiplier) || math.IsInf(multiplier, 0) {
			return models.Invalid("pricing tier %q must have a positive multiplier", category)
		}
	}
	return nil
}

func validateAddOn(addOn *models.AddOnService) error {
	if strings.TrimSpace(addOn.Name) == "" {
		return models.Invalid("add-on name is required")
	}
	if addOn.Price < 0 || math.IsNaN(addOn.Price) || math.IsInf(addOn.Price, 0) {
		return models.Invalid("add-on price must not be negative")
	}
	switch addOn.Category {
	case "", models.AddOnCategoryAddon, models.AddOnCategorySeasonal, models.AddOnCategoryOneTime:
	default:
		return models.Invalid("unknown add-on category %q", addOn.Category)
	}
	return nil
}
