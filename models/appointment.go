package models

import "time"

// Appointment statuses. Transitions are server-driven; clients only request
// them (reschedule, complete, cancel).
const (
	StatusScheduled   = "scheduled"
	StatusInProgress  = "in-progress"
	StatusCompleted   = "completed"
	StatusCancelled   = "cancelled"
	StatusRescheduled = "rescheduled"
)

// Recurrence cadence requested for an appointment. This is a label on the
// booking, not a recurring-job scheduler.
const (
	FrequencyOneTime  = "one-time"
	FrequencyWeekly   = "weekly"
	FrequencyBiWeekly = "bi-weekly"
	FrequencyMonthly  = "monthly"
)

// ValidFrequency reports whether f is a recognised frequency value.
func ValidFrequency(f string) bool {
	switch f {
	case FrequencyOneTime, FrequencyWeekly, FrequencyBiWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// ValidStatus reports whether s is a recognised appointment status.
func ValidStatus(s string) bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled, StatusRescheduled:
		return true
	}
	return false
}

// Appointment is a confirmed booking of a service package (plus add-ons)
// against a property.
//
// ScheduledDate is kept as the wire string: either "YYYY-MM-DD" or a full
// ISO8601 timestamp depending on which flow wrote it. ScheduledTime is a
// clock string, "HH:MM" from the booking wizard or "h:mm AM/PM" after a
// drag-and-drop reschedule. The calendar adapter reconciles both shapes.
type Appointment struct {
	ID                  string    `bson:"id" json:"id"`
	UserID              string    `bson:"user_id" json:"userId"`
	PropertyID          string    `bson:"property_id" json:"propertyId"`
	ServicePackageID    string    `bson:"service_package_id" json:"servicePackageId"`
	AddOnServiceIDs     []string  `bson:"add_on_service_ids" json:"addOnServiceIds"`
	ScheduledDate       string    `bson:"scheduled_date" json:"scheduledDate"`
	ScheduledTime       string    `bson:"scheduled_time" json:"scheduledTime"`
	Frequency           string    `bson:"frequency" json:"frequency"`
	SpecialInstructions string    `bson:"special_instructions,omitempty" json:"specialInstructions,omitempty"`
	Status              string    `bson:"status" json:"status"`
	TotalPrice          float64   `bson:"total_price" json:"totalPrice"`
	CrewMemberID        string    `bson:"crew_member_id,omitempty" json:"crewMemberId,omitempty"`
	CreatedAt           time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt           time.Time `bson:"updated_at" json:"updatedAt"`
}

// AppointmentStats is the per-status roll-up shown on the admin dashboard.
type AppointmentStats struct {
	Total      int `json:"total"`
	Scheduled  int `json:"scheduled"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`
}
