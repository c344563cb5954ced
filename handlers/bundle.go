package handlers

import (
	"errors"
	"net/http"

	userRepoPkg "lawnly/database/repository/user"
	"lawnly/models"
	"lawnly/services/appointment"
	"lawnly/services/booking"
	"lawnly/services/catalog"
	"lawnly/services/crew"
	"lawnly/services/pricing"
	"lawnly/services/property"
	"lawnly/services/user"
	"lawnly/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups every endpoint handler's dependencies in one struct
// wired up in main.
type HandlerBundle struct {
	// UserRepo backs the auth middleware's token hash check.
	UserRepo userRepoPkg.UserRepository

	Users        user.Service
	Catalog      catalog.Service
	Pricing      pricing.Service
	Sessions     booking.SessionService
	Submitter    booking.Submitter
	Properties   property.Service
	Appointments appointment.Service
	Crew         crew.Service
}

// respondError maps a service error onto the failure envelope: structured
// field errors become 422, single-message validation errors 400, known
// not-found sentinels 404, everything else a generic 500.
func respondError(c *gin.Context, err error) {
	if fields, ok := booking.AsFieldErrors(err); ok {
		utils.JSONFieldErrors(c, http.StatusUnprocessableEntity, "Validation failed", fields)
		return
	}
	var invalid *models.ValidationError
	if errors.As(err, &invalid) {
		utils.JSONError(c, http.StatusBadRequest, invalid.Error())
		return
	}
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "Booking session not found or expired")
	case errors.Is(err, appointment.ErrAppointmentNotFound):
		utils.JSONError(c, http.StatusNotFound, "Appointment not found")
	case errors.Is(err, property.ErrPropertyNotFound):
		utils.JSONError(c, http.StatusNotFound, "Property not found")
	case errors.Is(err, catalog.ErrPackageNotFound):
		utils.JSONError(c, http.StatusNotFound, "Service package not found")
	case errors.Is(err, catalog.ErrAddOnNotFound):
		utils.JSONError(c, http.StatusNotFound, "Add-on service not found")
	case errors.Is(err, crew.ErrMemberNotFound):
		utils.JSONError(c, http.StatusNotFound, "Crew member not found")
	case errors.Is(err, user.ErrUserNotFound):
		utils.JSONError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, user.ErrEmailTaken):
		utils.JSONError(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, user.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password")
	default:
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
	}
}
