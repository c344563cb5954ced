// Package booking implements the five-step booking wizard: per-step
// validation, draft persistence, the redis-cached session, and the
// property-then-appointment submission.
package booking

import "lawnly/models"

// Wizard steps, in order. Transitions are strictly linear.
const (
	StepProperty = 1
	StepService  = 2
	StepSchedule = 3
	StepContact  = 4
	StepReview   = 5
)

// StepName returns the display name of a wizard step.
func StepName(step int) string {
	switch step {
	case StepProperty:
		return "Property"
	case StepService:
		return "Service"
	case StepSchedule:
		return "Schedule"
	case StepContact:
		return "Contact"
	case StepReview:
		return "Review"
	}
	return ""
}

// Next advances the session one step if the current step validates. It
// returns the (possibly unchanged) step and the validation errors that
// blocked the advance, keyed by field name.
func Next(session *models.BookingSession) (int, map[string]string) {
	if session.Step < StepProperty {
		session.Step = StepProperty
	}
	if errs := ValidateStep(session.Step, session.Form); len(errs) > 0 {
		return session.Step, errs
	}
	if session.Step < StepReview {
		session.Step++
	}
	return session.Step, nil
}

// Back moves the session one step back. Going back never validates and
// never goes below the first step.
func Back(session *models.BookingSession) int {
	if session.Step > StepProperty {
		session.Step--
	}
	return session.Step
}
