package handlers

import (
	"net/http"

	"lawnly/middleware"
	"lawnly/services/calendar"
	"lawnly/utils"

	"github.com/gin-gonic/gin"
)

// ListMyAppointments returns the caller's appointments.
func (h *HandlerBundle) ListMyAppointments(c *gin.Context) {
	appts, err := h.Appointments.ListForUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, appts)
}

// GetMyAppointment returns one of the caller's appointments.
func (h *HandlerBundle) GetMyAppointment(c *gin.Context) {
	appt, err := h.Appointments.GetForUser(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, appt)
}

// CancelMyAppointment cancels the caller's own upcoming appointment.
func (h *HandlerBundle) CancelMyAppointment(c *gin.Context) {
	if err := h.Appointments.CancelForUser(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"cancelled": true})
}

// ListAppointments returns every appointment, optionally filtered with
// ?status=.
func (h *HandlerBundle) ListAppointments(c *gin.Context) {
	appts, err := h.Appointments.ListAll(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, appts)
}

// AppointmentCalendar renders the filtered appointments as calendar events.
// Optional from/to query parameters (ISO dates, half-open) narrow the window.
// Records that could not be parsed are reported alongside, never silently
// dropped.
func (h *HandlerBundle) AppointmentCalendar(c *gin.Context) {
	events, issues, err := h.Appointments.CalendarEvents(c.Request.Context(),
		c.Query("status"), c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"events": events,
		"issues": issues,
	})
}

// RescheduleAppointment moves an appointment to the dropped calendar slot.
func (h *HandlerBundle) RescheduleAppointment(c *gin.Context) {
	var req calendar.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.AppointmentID = c.Param("id")

	appt, err := h.Appointments.Reschedule(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, appt)
}

// UpdateAppointmentStatus applies an admin status change.
func (h *HandlerBundle) UpdateAppointmentStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}

	appt, err := h.Appointments.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, appt)
}

// AssignAppointmentCrew attaches a crew member to an appointment.
func (h *HandlerBundle) AssignAppointmentCrew(c *gin.Context) {
	var req struct {
		CrewMemberID string `json:"crewMemberId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.CrewMemberID == "" {
		utils.JSONError(c, http.StatusBadRequest, "crewMemberId is required")
		return
	}

	appt, err := h.Appointments.AssignCrew(c.Request.Context(), c.Param("id"), req.CrewMemberID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, appt)
}

// AppointmentStats returns the per-status dashboard roll-up.
func (h *HandlerBundle) AppointmentStats(c *gin.Context) {
	stats, err := h.Appointments.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}
