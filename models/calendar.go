package models

import "time"

// CalendarEvent is an appointment rendered onto the admin calendar, with
// explicit local-time start and end instants.
type CalendarEvent struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	// Appointment is the source record the event was derived from.
	Appointment Appointment `json:"appointment"`
}
