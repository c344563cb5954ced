package models

import "time"

// Lot size categories used as keys of a package's pricing tier map.
const (
	LotSizeSmall  = "small"
	LotSizeMedium = "medium"
	LotSizeLarge  = "large"
	LotSizeXLarge = "xlarge"
)

// ServicePackage is a bookable lawn-care package. Created and edited by
// admins; the booking flow reads it only.
type ServicePackage struct {
	ID          string             `bson:"id" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	BasePrice   float64            `bson:"base_price" json:"basePrice"`
	// PricingTiers maps a lot size category to a price multiplier.
	// A missing category means multiplier 1.0.
	PricingTiers map[string]float64 `bson:"pricing_tiers" json:"pricingTiers"`
	Features     []string           `bson:"features" json:"features"`
	IsActive     bool               `bson:"is_active" json:"isActive"`
	SortOrder    int                `bson:"sort_order" json:"sortOrder"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}
