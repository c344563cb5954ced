package handlers

import (
	"net/http"

	"lawnly/middleware"
	"lawnly/models"
	"lawnly/services/booking"
	"lawnly/utils"

	"github.com/gin-gonic/gin"
)

// StartBookingSession opens a new wizard session for the authenticated
// customer.
func (h *HandlerBundle) StartBookingSession(c *gin.Context) {
	session, err := h.Sessions.Start(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, session)
}

// GetBookingSession returns the current wizard state.
func (h *HandlerBundle) GetBookingSession(c *gin.Context) {
	session, err := h.sessionForCaller(c)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, session)
}

// UpdateBookingForm replaces the session's form with the submitted fields.
func (h *HandlerBundle) UpdateBookingForm(c *gin.Context) {
	if _, err := h.sessionForCaller(c); err != nil {
		respondError(c, err)
		return
	}

	var form models.BookingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.Sessions.UpdateForm(c.Request.Context(), c.Param("sessionId"), form)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, session)
}

// SelectBookingProperty prefills step 1 from a saved property.
func (h *HandlerBundle) SelectBookingProperty(c *gin.Context) {
	if _, err := h.sessionForCaller(c); err != nil {
		respondError(c, err)
		return
	}

	var req struct {
		PropertyID string `json:"propertyId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.PropertyID == "" {
		utils.JSONError(c, http.StatusBadRequest, "propertyId is required")
		return
	}

	session, err := h.Sessions.SelectProperty(c.Request.Context(), c.Param("sessionId"), req.PropertyID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, session)
}

// NextBookingStep validates the current step and advances. Blocking field
// errors come back as a 422 with the session state unchanged.
func (h *HandlerBundle) NextBookingStep(c *gin.Context) {
	if _, err := h.sessionForCaller(c); err != nil {
		respondError(c, err)
		return
	}

	session, errs, err := h.Sessions.Next(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		respondError(c, err)
		return
	}
	if len(errs) > 0 {
		utils.JSONFieldErrors(c, http.StatusUnprocessableEntity, "Please fix the highlighted fields", errs)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, session)
}

// PrevBookingStep moves one step back.
func (h *HandlerBundle) PrevBookingStep(c *gin.Context) {
	if _, err := h.sessionForCaller(c); err != nil {
		respondError(c, err)
		return
	}

	session, err := h.Sessions.Back(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, session)
}

// CancelBookingSession discards the session; any draft survives.
func (h *HandlerBundle) CancelBookingSession(c *gin.Context) {
	if _, err := h.sessionForCaller(c); err != nil {
		respondError(c, err)
		return
	}

	if err := h.Sessions.Cancel(c.Request.Context(), c.Param("sessionId")); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"cancelled": true})
}

// SubmitBooking finalises the wizard form into a property and appointment.
func (h *HandlerBundle) SubmitBooking(c *gin.Context) {
	session, err := h.sessionForCaller(c)
	if err != nil {
		respondError(c, err)
		return
	}

	appt, err := h.Submitter.Submit(c.Request.Context(), session.UserID, session.Form)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.Sessions.Cancel(c.Request.Context(), session.SessionID); err != nil {
		// The booking already exists; a stale session is harmless.
		utils.GetLogger().Warn("failed to discard submitted session")
	}
	middleware.CountBookingSubmitted()
	utils.JSONSuccess(c, http.StatusCreated, appt)
}

// sessionForCaller loads the path's session and enforces that it belongs to
// the authenticated user.
func (h *HandlerBundle) sessionForCaller(c *gin.Context) (*models.BookingSession, error) {
	session, err := h.Sessions.Get(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		return nil, err
	}
	if session.UserID != middleware.UserID(c) {
		return nil, booking.ErrSessionNotFound
	}
	return session, nil
}
