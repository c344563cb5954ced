// Package pricing implements the lot-size-tiered price arithmetic for
// service packages and add-ons. Everything in this file is pure and
// synchronous: no I/O, no side effects.
package pricing

import (
	"fmt"
	"math"
	"strings"

	"lawnly/models"
)

// Lot size category thresholds, in square feet. Boundaries are half-open:
// 4999 is small, 5000 is medium, 15000 is xlarge.
const (
	mediumThreshold = 5000
	largeThreshold  = 10000
	xlargeThreshold = 15000
)

// LotSizeCategory buckets a lot size into small/medium/large/xlarge.
func LotSizeCategory(lotSize int) string {
	switch {
	case lotSize < mediumThreshold:
		return models.LotSizeSmall
	case lotSize < largeThreshold:
		return models.LotSizeMedium
	case lotSize < xlargeThreshold:
		return models.LotSizeLarge
	default:
		return models.LotSizeXLarge
	}
}

// Multiplier looks up the price multiplier for a lot size in a package's
// tier map. A category absent from the map means multiplier 1.0.
func Multiplier(lotSize int, tiers map[string]float64) float64 {
	if m, ok := tiers[LotSizeCategory(lotSize)]; ok && m != 0 {
		return m
	}
	return 1.0
}

// PackagePrice applies the lot size multiplier to a package's base price.
func PackagePrice(basePrice float64, lotSize int, tiers map[string]float64) float64 {
	return basePrice * Multiplier(lotSize, tiers)
}

// AddOnsTotal sums the prices of the selected add-ons. A malformed price
// (NaN or infinite) counts as zero rather than poisoning the total.
func AddOnsTotal(addOns []models.AddOnService) float64 {
	total := 0.0
	for _, a := range addOns {
		if math.IsNaN(a.Price) || math.IsInf(a.Price, 0) {
			continue
		}
		total += a.Price
	}
	return total
}

// GrandTotal is the package price plus the add-ons total.
func GrandTotal(packagePrice, addOnsTotal float64) float64 {
	return packagePrice + addOnsTotal
}

// FormatPrice renders a price as a USD currency string with exactly two
// decimal digits and thousands separators, e.g. "$1,234.50". A non-finite
// price renders as "$0.00".
func FormatPrice(price float64) string {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return "$0.00"
	}
	neg := price < 0
	s := fmt.Sprintf("%.2f", math.Abs(price))

	parts := strings.SplitN(s, ".", 2)
	whole := parts[0]

	var b strings.Builder
	lead := len(whole) % 3
	if lead > 0 {
		b.WriteString(whole[:lead])
	}
	for i := lead; i < len(whole); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(whole[i : i+3])
	}

	out := "$" + b.String() + "." + parts[1]
	if neg {
		out = "-" + out
	}
	return out
}

// FullBreakdown computes the complete price breakdown for a package, lot
// size, and add-on selection. A nil package or non-positive lot size yields
// an all-zero breakdown with the default "small" category; no error is ever
// raised for invalid input.
func FullBreakdown(pkg *models.ServicePackage, lotSize int, addOns []models.AddOnService) models.PriceBreakdown {
	if pkg == nil || lotSize <= 0 {
		return models.PriceBreakdown{
			Multiplier:      1.0,
			LotSizeCategory: models.LotSizeSmall,
			Formatted: models.FormattedBreakdown{
				PackagePrice: FormatPrice(0),
				AddOnsTotal:  FormatPrice(0),
				GrandTotal:   FormatPrice(0),
			},
		}
	}

	multiplier := Multiplier(lotSize, pkg.PricingTiers)
	packagePrice := PackagePrice(pkg.BasePrice, lotSize, pkg.PricingTiers)
	addOnsTotal := AddOnsTotal(addOns)
	grandTotal := GrandTotal(packagePrice, addOnsTotal)

	return models.PriceBreakdown{
		PackagePrice:    packagePrice,
		AddOnsTotal:     addOnsTotal,
		GrandTotal:      grandTotal,
		Multiplier:      multiplier,
		LotSizeCategory: LotSizeCategory(lotSize),
		Formatted: models.FormattedBreakdown{
			PackagePrice: FormatPrice(packagePrice),
			AddOnsTotal:  FormatPrice(addOnsTotal),
			GrandTotal:   FormatPrice(grandTotal),
		},
	}
}
