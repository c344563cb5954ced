package calendar

import (
	"testing"
	"time"

	"lawnly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAdapter() *Adapter {
	return &Adapter{Location: time.UTC}
}

func TestBuildEvents_ISOTimestampWithPMTime(t *testing.T) {
	appt := models.Appointment{
		ID:            "appt-1",
		ScheduledDate: "2024-01-15T00:00:00.000Z",
		ScheduledTime: "2:30 PM",
		Status:        models.StatusScheduled,
	}

	events, issues := testAdapter().BuildEvents([]models.Appointment{appt})

	require.Len(t, events, 1)
	assert.Empty(t, issues)
	// The wall-clock date survives untouched even though the raw string
	// carries a UTC timestamp suffix.
	assert.Equal(t, time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC), events[0].Start)
	assert.Equal(t, time.Date(2024, 1, 15, 16, 30, 0, 0, time.UTC), events[0].End)
}

func TestBuildEvents_MissingTimeDroppedWithIssue(t *testing.T) {
	appts := []models.Appointment{
		{ID: "ok", ScheduledDate: "2024-03-01", ScheduledTime: "9:00 AM"},
		{ID: "no-time", ScheduledDate: "2024-03-01"},
	}

	events, issues := testAdapter().BuildEvents(appts)

	require.Len(t, events, 1)
	assert.Equal(t, "ok", events[0].ID)
	require.Len(t, issues, 1)
	assert.Equal(t, "no-time", issues[0].AppointmentID)
	assert.Equal(t, "scheduledTime", issues[0].Field)
}

func TestBuildEvents_MalformedDatesRejected(t *testing.T) {
	appts := []models.Appointment{
		{ID: "two-part", ScheduledDate: "2024-01", ScheduledTime: "9:00 AM"},
		{ID: "non-numeric", ScheduledDate: "2024-xx-15", ScheduledTime: "9:00 AM"},
		{ID: "no-date", ScheduledTime: "9:00 AM"},
	}

	events, issues := testAdapter().BuildEvents(appts)

	assert.Empty(t, events)
	assert.Len(t, issues, 3)
	for _, issue := range issues {
		assert.Equal(t, "scheduledDate", issue.Field)
	}
}

func TestParseClock_MeridiemHandling(t *testing.T) {
	tests := []struct {
		in        string
		hour, min int
	}{
		{"12:00 AM", 0, 0},
		{"12:30 PM", 12, 30},
		{"1:00 PM", 13, 0},
		{"11:45 PM", 23, 45},
		{"9:00 AM", 9, 0},
		{"09:00", 9, 0},
		{"17:15", 17, 15},
	}
	for _, tt := range tests {
		hour, min, err := parseClock(models.Appointment{ID: "x", ScheduledTime: tt.in})
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.hour, hour, tt.in)
		assert.Equal(t, tt.min, min, tt.in)
	}
}

func TestEventFor_TwoHourDefaultDuration(t *testing.T) {
	event, err := testAdapter().EventFor(models.Appointment{
		ID:            "appt-2",
		ScheduledDate: "2024-06-10",
		ScheduledTime: "08:00",
	})

	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, event.End.Sub(event.Start))
}

func TestEncodeReschedule_LocalDateNeverShifts(t *testing.T) {
	// 11 PM in a UTC-6 zone: encoding through UTC would land on the next day.
	loc := time.FixedZone("CST", -6*3600)
	start := time.Date(2024, 1, 15, 23, 0, 0, 0, loc)

	req := EncodeReschedule("appt-3", start)

	assert.Equal(t, "2024-01-15", req.ScheduledDate)
	assert.Equal(t, "11:00 PM", req.ScheduledTime)
}

func TestEncodeClockTime(t *testing.T) {
	tests := []struct {
		hour, min int
		want      string
	}{
		{0, 5, "12:05 AM"},
		{9, 0, "9:00 AM"},
		{12, 0, "12:00 PM"},
		{14, 30, "2:30 PM"},
		{23, 59, "11:59 PM"},
	}
	for _, tt := range tests {
		ts := time.Date(2024, 1, 1, tt.hour, tt.min, 0, 0, time.UTC)
		assert.Equal(t, tt.want, EncodeClockTime(ts))
	}
}

func TestBuildEvents_TitleFunc(t *testing.T) {
	adapter := &Adapter{
		Location: time.UTC,
		TitleFor: func(a models.Appointment) string { return "Service at " + a.PropertyID },
	}

	events, _ := adapter.BuildEvents([]models.Appointment{
		{ID: "appt-4", PropertyID: "prop-9", ScheduledDate: "2024-02-02", ScheduledTime: "10:00"},
	})

	require.Len(t, events, 1)
	assert.Equal(t, "Service at prop-9", events[0].Title)
}
