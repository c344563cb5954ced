package pricing

import (
	"context"
	"fmt"

	catalogRepo "lawnly/database/repository/catalog"
	"lawnly/models"
)

// QuoteDisclaimer accompanies every quick quote.
const QuoteDisclaimer = "Estimates are based on lot size and standard conditions. Final pricing is confirmed after the first visit."

// Service resolves catalog entities and computes price breakdowns for them.
type Service interface {
	// CalculatePrice computes the full breakdown for a package, lot size,
	// and add-on selection.
	CalculatePrice(ctx context.Context, packageID string, lotSize int, addOnIDs []string) (*models.PriceBreakdown, error)
	// QuickQuote estimates every active package at the supplied lot size.
	QuickQuote(ctx context.Context, lotSize int) (*models.QuickQuote, error)
}

// DefaultService is the production implementation.
type DefaultService struct {
	Catalog catalogRepo.CatalogRepository
}

func (s *DefaultService) CalculatePrice(ctx context.Context, packageID string, lotSize int, addOnIDs []string) (*models.PriceBreakdown, error) {
	pkg, err := s.Catalog.GetPackageByID(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("failed to load service package: %w", err)
	}
	if pkg == nil {
		return nil, fmt.Errorf("service package %s not found", packageID)
	}

	addOns, err := s.Catalog.GetAddOnsByIDs(ctx, addOnIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load add-on services: %w", err)
	}

	breakdown := FullBreakdown(pkg, lotSize, addOns)
	return &breakdown, nil
}

func (s *DefaultService) QuickQuote(ctx context.Context, lotSize int) (*models.QuickQuote, error) {
	packages, err := s.Catalog.ListPackages(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load service packages: %w", err)
	}

	quote := &models.QuickQuote{
		LotSize:         lotSize,
		LotSizeCategory: LotSizeCategory(lotSize),
		Disclaimer:      QuoteDisclaimer,
	}
	for _, pkg := range packages {
		estimated := PackagePrice(pkg.BasePrice, lotSize, pkg.PricingTiers)
		quote.Estimates = append(quote.Estimates, models.PackageEstimate{
			PackageID:      pkg.ID,
			Name:           pkg.Name,
			BasePrice:      pkg.BasePrice,
			EstimatedPrice: estimated,
			Formatted:      FormatPrice(estimated),
		})
	}
	return quote, nil
}
