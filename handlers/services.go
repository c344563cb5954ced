package handlers

import (
	"net/http"

	"lawnly/utils"

	"github.com/gin-gonic/gin"
)

// ListPackages returns the active service packages. Admins may pass
// ?includeInactive=true to see retired ones.
func (h *HandlerBundle) ListPackages(c *gin.Context) {
	includeInactive := c.Query("includeInactive") == "true"
	packages, err := h.Catalog.ListPackages(c.Request.Context(), includeInactive)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, packages)
}

// ListAddOns returns the active add-on services.
func (h *HandlerBundle) ListAddOns(c *gin.Context) {
	includeInactive := c.Query("includeInactive") == "true"
	addOns, err := h.Catalog.ListAddOns(c.Request.Context(), includeInactive)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, addOns)
}

// QuickQuote estimates every active package for a lot size. Public, no
// account required.
func (h *HandlerBundle) QuickQuote(c *gin.Context) {
	var req struct {
		LotSize int `json:"lotSize"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.LotSize <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "lotSize must be a positive integer")
		return
	}

	quote, err := h.Pricing.QuickQuote(c.Request.Context(), req.LotSize)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, quote)
}

// CalculatePrice returns the full breakdown for a package, lot size, and
// add-on selection.
func (h *HandlerBundle) CalculatePrice(c *gin.Context) {
	var req struct {
		PackageID string   `json:"packageId"`
		LotSize   int      `json:"lotSize"`
		AddOnIDs  []string `json:"addOnIds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PackageID == "" || req.LotSize <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "packageId and a positive lotSize are required")
		return
	}

	breakdown, err := h.Pricing.CalculatePrice(c.Request.Context(), req.PackageID, req.LotSize, req.AddOnIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, breakdown)
}
