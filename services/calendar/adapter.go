// Package calendar converts appointment records into calendar events and
// back. Appointment dates and times arrive in mixed wire shapes ("YYYY-MM-DD"
// or full ISO timestamps; "HH:MM" or "h:mm AM/PM") and are reconciled into
// explicit local-time instants.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"lawnly/models"
)

// DefaultEventDuration is the assumed service duration; appointments carry
// no explicit end time.
const DefaultEventDuration = 2 * time.Hour

// ParseIssue describes one appointment record that could not be rendered.
// Malformed records never fail the whole batch; they are collected so the
// view can surface a diagnostic count instead of silently dropping them.
type ParseIssue struct {
	AppointmentID string `json:"appointmentId"`
	Field         string `json:"field"`
	Reason        string `json:"reason"`
}

func (e ParseIssue) Error() string {
	return fmt.Sprintf("appointment %s: bad %s: %s", e.AppointmentID, e.Field, e.Reason)
}

// Adapter renders appointments onto a calendar in a fixed location.
type Adapter struct {
	// Location is the timezone events are materialised in. Defaults to
	// time.Local.
	Location *time.Location
	// Duration is the event length. Defaults to DefaultEventDuration.
	Duration time.Duration
	// TitleFor builds an event title from its appointment. Defaults to the
	// appointment status plus id.
	TitleFor func(models.Appointment) string
}

func (a *Adapter) location() *time.Location {
	if a.Location != nil {
		return a.Location
	}
	return time.Local
}

func (a *Adapter) duration() time.Duration {
	if a.Duration > 0 {
		return a.Duration
	}
	return DefaultEventDuration
}

func (a *Adapter) title(appt models.Appointment) string {
	if a.TitleFor != nil {
		return a.TitleFor(appt)
	}
	return appt.Status + " " + appt.ID
}

// BuildEvents converts appointments into calendar events. Records that fail
// parsing are reported as issues, not errors: one malformed appointment
// must never break the whole view.
func (a *Adapter) BuildEvents(appts []models.Appointment) ([]models.CalendarEvent, []ParseIssue) {
	events := make([]models.CalendarEvent, 0, len(appts))
	var issues []ParseIssue

	for _, appt := range appts {
		event, err := a.EventFor(appt)
		if err != nil {
			if issue, ok := err.(ParseIssue); ok {
				issues = append(issues, issue)
			} else {
				issues = append(issues, ParseIssue{AppointmentID: appt.ID, Field: "record", Reason: err.Error()})
			}
			continue
		}
		events = append(events, event)
	}
	return events, issues
}

// EventFor converts a single appointment into a calendar event.
func (a *Adapter) EventFor(appt models.Appointment) (models.CalendarEvent, error) {
	year, month, day, err := parseDateParts(appt)
	if err != nil {
		return models.CalendarEvent{}, err
	}

	hour, minute, err := parseClock(appt)
	if err != nil {
		return models.CalendarEvent{}, err
	}

	start := time.Date(year, time.Month(month), day, hour, minute, 0, 0, a.location())
	return models.CalendarEvent{
		ID:          appt.ID,
		Title:       a.title(appt),
		Start:       start,
		End:         start.Add(a.duration()),
		Appointment: appt,
	}, nil
}

// parseDateParts extracts local Y/M/D from the scheduled date string. ISO
// timestamps are truncated at the "T" so the wall-clock date is used as-is,
// never shifted through UTC.
func parseDateParts(appt models.Appointment) (year, month, day int, err error) {
	dateStr := appt.ScheduledDate
	if dateStr == "" {
		return 0, 0, 0, ParseIssue{AppointmentID: appt.ID, Field: "scheduledDate", Reason: "missing"}
	}
	if idx := strings.Index(dateStr, "T"); idx >= 0 {
		dateStr = dateStr[:idx]
	}

	parts := strings.Split(dateStr, "-")
	if len(parts) != 3 {
		return 0, 0, 0, ParseIssue{AppointmentID: appt.ID, Field: "scheduledDate", Reason: "not a three-part date: " + dateStr}
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, convErr := strconv.Atoi(p)
		if convErr != nil {
			return 0, 0, 0, ParseIssue{AppointmentID: appt.ID, Field: "scheduledDate", Reason: "non-numeric part: " + p}
		}
		nums[i] = n
	}
	if nums[1] < 1 || nums[1] > 12 || nums[2] < 1 || nums[2] > 31 {
		return 0, 0, 0, ParseIssue{AppointmentID: appt.ID, Field: "scheduledDate", Reason: "out-of-range date: " + dateStr}
	}
	return nums[0], nums[1], nums[2], nil
}

// parseClock converts the scheduled time string into a 24-hour hour/minute
// pair. Both "HH:MM" and "h:mm AM/PM" are accepted: 12 AM maps to 0, 12 PM
// stays 12, and PM adds 12 to any other hour.
func parseClock(appt models.Appointment) (hour, minute int, err error) {
	timeStr := appt.ScheduledTime
	if timeStr == "" {
		return 0, 0, ParseIssue{AppointmentID: appt.ID, Field: "scheduledTime", Reason: "missing"}
	}

	fields := strings.FieldsFunc(timeStr, func(r rune) bool {
		return r == ':' || r == ' '
	})
	if len(fields) < 2 {
		return 0, 0, ParseIssue{AppointmentID: appt.ID, Field: "scheduledTime", Reason: "unparseable: " + timeStr}
	}

	hour, herr := strconv.Atoi(fields[0])
	minute, merr := strconv.Atoi(fields[1])
	if herr != nil || merr != nil {
		return 0, 0, ParseIssue{AppointmentID: appt.ID, Field: "scheduledTime", Reason: "non-numeric: " + timeStr}
	}

	upper := strings.ToUpper(timeStr)
	isPM := strings.Contains(upper, "PM")
	isAM := strings.Contains(upper, "AM")
	if isPM && hour != 12 {
		hour += 12
	}
	if isAM && hour == 12 {
		hour = 0
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, ParseIssue{AppointmentID: appt.ID, Field: "scheduledTime", Reason: "out-of-range: " + timeStr}
	}
	return hour, minute, nil
}
