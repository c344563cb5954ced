package handlers

import (
	"net/http"

	"lawnly/middleware"
	"lawnly/services/user"
	"lawnly/utils"

	"github.com/gin-gonic/gin"
)

// GetProfile returns the authenticated account.
func (h *HandlerBundle) GetProfile(c *gin.Context) {
	profile, err := h.Users.GetProfile(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, profile)
}

// UpdateProfile edits the authenticated account's display fields.
func (h *HandlerBundle) UpdateProfile(c *gin.Context) {
	var update user.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := h.Users.UpdateProfile(c.Request.Context(), middleware.UserID(c), update)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, profile)
}

// DeleteAccount removes the authenticated account.
func (h *HandlerBundle) DeleteAccount(c *gin.Context) {
	if err := h.Users.DeleteAccount(c.Request.Context(), middleware.UserID(c)); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}

// ListCustomers returns the customer directory for the admin back office.
func (h *HandlerBundle) ListCustomers(c *gin.Context) {
	customers, err := h.Users.ListCustomers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customers)
}

// GetCustomer returns a single customer account for the admin back office.
func (h *HandlerBundle) GetCustomer(c *gin.Context) {
	user, err := h.Users.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

// DeleteCustomer removes a customer account from the admin back office.
func (h *HandlerBundle) DeleteCustomer(c *gin.Context) {
	if err := h.Users.DeleteAccount(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
