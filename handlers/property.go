package handlers

import (
	"net/http"

	"lawnly/middleware"
	"lawnly/models"
	"lawnly/utils"

	"github.com/gin-gonic/gin"
)

// ListProperties returns the caller's saved properties, primary first.
func (h *HandlerBundle) ListProperties(c *gin.Context) {
	properties, err := h.Properties.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, properties)
}

// GetProperty returns one owned property.
func (h *HandlerBundle) GetProperty(c *gin.Context) {
	property, err := h.Properties.Get(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, property)
}

// CreateProperty saves a new property for the caller.
func (h *HandlerBundle) CreateProperty(c *gin.Context) {
	var property models.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Properties.Create(c.Request.Context(), middleware.UserID(c), &property); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, property)
}

// UpdateProperty rewrites an owned property.
func (h *HandlerBundle) UpdateProperty(c *gin.Context) {
	var property models.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	property.ID = c.Param("id")

	if err := h.Properties.Update(c.Request.Context(), middleware.UserID(c), &property); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, property)
}

// SetPrimaryProperty marks one property primary and demotes the rest.
func (h *HandlerBundle) SetPrimaryProperty(c *gin.Context) {
	if err := h.Properties.SetPrimary(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"primary": c.Param("id")})
}

// DeleteProperty removes an owned property.
func (h *HandlerBundle) DeleteProperty(c *gin.Context) {
	if err := h.Properties.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
