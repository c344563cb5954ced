package calendar

import (
	"fmt"
	"time"
)

// EncodeDate renders the wire date from the instant's local Y/M/D
// components. Formatting through UTC here would shift evening drags onto
// the previous or next day.
func EncodeDate(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// EncodeClockTime renders the 12-hour wire time, e.g. "2:30 PM".
func EncodeClockTime(t time.Time) string {
	hour := t.Hour()
	meridiem := "AM"
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		meridiem = "PM"
	case hour > 12:
		hour -= 12
		meridiem = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute(), meridiem)
}

// RescheduleRequest is the wire payload of a drag-and-drop reschedule.
type RescheduleRequest struct {
	AppointmentID string `json:"appointmentId"`
	ScheduledDate string `json:"scheduledDate"`
	ScheduledTime string `json:"scheduledTime"`
}

// EncodeReschedule converts a dropped event position back into the wire
// format the reschedule endpoint expects.
func EncodeReschedule(appointmentID string, start time.Time) RescheduleRequest {
	return RescheduleRequest{
		AppointmentID: appointmentID,
		ScheduledDate: EncodeDate(start),
		ScheduledTime: EncodeClockTime(start),
	}
}
