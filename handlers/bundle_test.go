package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"lawnly/models"
	"lawnly/services/booking"
	"lawnly/services/user"
)

func respondStatus(t *testing.T, err error) int {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondError(c, err)
	return w.Code
}

func TestRespondError_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"field errors", booking.FieldErrors{"email": "required"}, http.StatusUnprocessableEntity},
		{"validation error", models.Invalid("password must be at least 8 characters"), http.StatusBadRequest},
		{"not found sentinel", user.ErrUserNotFound, http.StatusNotFound},
		{"email taken", user.ErrEmailTaken, http.StatusConflict},
		{"bad credentials", user.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unknown error", errors.New("mongo timeout"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, respondStatus(t, tt.err))
		})
	}
}
