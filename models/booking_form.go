package models

// BookingForm holds every field collected across the five booking wizard
// steps. While a brand-new property is being entered the form is persisted
// as a draft so an interrupted session does not lose progress.
type BookingForm struct {
	// Step 1: property. Either a saved property is selected (PropertyID
	// set, fields prefilled) or a new one is described inline.
	PropertyID  string `json:"propertyId,omitempty"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zipCode"`
	LotSize     int    `json:"lotSize"`
	HasBackyard bool   `json:"hasBackyard"`
	HasDogs     bool   `json:"hasDogs"`
	GateCode    string `json:"gateCode,omitempty"`

	// Step 2: service selection.
	ServicePackageID string   `json:"servicePackageId"`
	AddOnServiceIDs  []string `json:"addOnServiceIds"`

	// Step 3: schedule.
	ScheduledDate string `json:"scheduledDate"` // "YYYY-MM-DD"
	ScheduledTime string `json:"scheduledTime"` // "HH:MM", from the fixed slot list
	Frequency     string `json:"frequency"`

	// Step 4: contact.
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}

// UsesSavedProperty reports whether the form references a previously saved
// property instead of describing a new one.
func (f BookingForm) UsesSavedProperty() bool {
	return f.PropertyID != ""
}

// BookingSession is the server-side wizard state cached in Redis under a
// UUID session id. The breakdown is recomputed whenever the form's package,
// lot size, or add-on selection changes.
type BookingSession struct {
	SessionID string         `json:"sessionId"`
	UserID    string         `json:"userId"`
	Step      int            `json:"step"` // 1..5
	Form      BookingForm    `json:"form"`
	Breakdown PriceBreakdown `json:"breakdown"`
}
