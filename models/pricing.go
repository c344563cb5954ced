package models

// FormattedBreakdown carries the locale currency renderings of a price
// breakdown ("$X.XX", USD, two decimals).
type FormattedBreakdown struct {
	PackagePrice string `json:"packagePrice"`
	AddOnsTotal  string `json:"addOnsTotal"`
	GrandTotal   string `json:"grandTotal"`
}

// PriceBreakdown is derived, never persisted. It is recomputed whenever the
// lot size, selected package, or add-on selection changes.
//
// Invariant: PackagePrice = basePrice × multiplier(lotSizeCategory) and
// GrandTotal = PackagePrice + AddOnsTotal.
type PriceBreakdown struct {
	PackagePrice    float64            `json:"packagePrice"`
	AddOnsTotal     float64            `json:"addOnsTotal"`
	GrandTotal      float64            `json:"grandTotal"`
	Multiplier      float64            `json:"multiplier"`
	LotSizeCategory string             `json:"lotSizeCategory"`
	Formatted       FormattedBreakdown `json:"formatted"`
}

// PackageEstimate is one package's quick-quote line for a given lot size.
type PackageEstimate struct {
	PackageID      string  `json:"packageId"`
	Name           string  `json:"name"`
	BasePrice      float64 `json:"basePrice"`
	EstimatedPrice float64 `json:"estimatedPrice"`
	Formatted      string  `json:"formatted"`
}

// QuickQuote is the response of the public quick-quote endpoint: an estimate
// for every active package at the supplied lot size.
type QuickQuote struct {
	LotSize         int               `json:"lotSize"`
	LotSizeCategory string            `json:"lotSizeCategory"`
	Estimates       []PackageEstimate `json:"estimates"`
	Disclaimer      string            `json:"disclaimer"`
}
