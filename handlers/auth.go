package handlers

import (
	"net/http"

	"lawnly/middleware"
	"lawnly/services/user"
	"lawnly/utils"

	"github.com/gin-gonic/gin"
)

// Register creates a customer account and signs them in.
func (h *HandlerBundle) Register(c *gin.Context) {
	var input user.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.Users.Register(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, result)
}

// Login authenticates by email and password.
func (h *HandlerBundle) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.Users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}

// Logout invalidates the current token.
func (h *HandlerBundle) Logout(c *gin.Context) {
	if err := h.Users.Logout(c.Request.Context(), middleware.UserID(c)); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"loggedOut": true})
}
