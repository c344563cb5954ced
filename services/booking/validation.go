package booking

import (
	"regexp"
	"time"

	"lawnly/models"
)

// Lot size bounds in square feet.
const (
	MinLotSize = 100
	MaxLotSize = 1_000_000
)

// MaxSpecialInstructions caps the free-text instructions length.
const MaxSpecialInstructions = 1000

// TimeSlots is the fixed list of bookable start times, hourly from 8 AM
// through 5 PM.
var TimeSlots = []string{
	"08:00", "09:00", "10:00", "11:00", "12:00",
	"13:00", "14:00", "15:00", "16:00", "17:00",
}

var (
	stateRe = regexp.MustCompile(`^[A-Z]{2}$`)
	zipRe   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
)

// IsValidTimeSlot reports whether t is one of the bookable start times.
func IsValidTimeSlot(t string) bool {
	for _, slot := range TimeSlots {
		if slot == t {
			return true
		}
	}
	return false
}

// ValidateStep checks the required fields of one wizard step and returns a
// field→message map; an empty map means the step may advance. Validation
// never reaches the network.
func ValidateStep(step int, form models.BookingForm) map[string]string {
	errs := map[string]string{}

	switch step {
	case StepProperty:
		// A saved property was validated when it was first persisted.
		if form.UsesSavedProperty() {
			break
		}
		if form.Address == "" {
			errs["address"] = "Address is required"
		}
		if form.City == "" {
			errs["city"] = "City is required"
		}
		if form.State == "" {
			errs["state"] = "State is required"
		} else if !stateRe.MatchString(form.State) {
			errs["state"] = "State must be a 2-letter uppercase code"
		}
		if form.ZipCode == "" {
			errs["zipCode"] = "ZIP code is required"
		} else if !zipRe.MatchString(form.ZipCode) {
			errs["zipCode"] = "Invalid ZIP code format"
		}
		if form.LotSize < MinLotSize || form.LotSize > MaxLotSize {
			errs["lotSize"] = "Valid lot size is required"
		}

	case StepService:
		if form.ServicePackageID == "" {
			errs["servicePackageId"] = "Please select a service package"
		}

	case StepSchedule:
		if form.ScheduledDate == "" {
			errs["scheduledDate"] = "Please select a date"
		} else if _, err := time.Parse("2006-01-02", form.ScheduledDate); err != nil {
			errs["scheduledDate"] = "Invalid date format"
		}
		if form.ScheduledTime == "" {
			errs["scheduledTime"] = "Please select a time"
		} else if !IsValidTimeSlot(form.ScheduledTime) {
			errs["scheduledTime"] = "Please select a time from the available slots"
		}
		if form.Frequency != "" && !models.ValidFrequency(form.Frequency) {
			errs["frequency"] = "Frequency must be one of: one-time, weekly, bi-weekly, monthly"
		}

	case StepContact:
		// Special instructions are optional free text; only the length is
		// bounded, and that is checked at submission.

	case StepReview:
		// Read-only summary; nothing to validate.
	}

	return errs
}

// ValidateForm runs every gating step plus the submission-only checks.
// Used before composing the final payload.
func ValidateForm(form models.BookingForm) map[string]string {
	errs := map[string]string{}
	for step := StepProperty; step <= StepSchedule; step++ {
		for field, msg := range ValidateStep(step, form) {
			errs[field] = msg
		}
	}
	if len(form.SpecialInstructions) > MaxSpecialInstructions {
		errs["specialInstructions"] = "Special instructions must be less than 1000 characters"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
