package handlers

import (
	"net/http"

	"lawnly/models"
	"lawnly/utils"

	"github.com/gin-gonic/gin"
)

// CreatePackage adds a service package to the catalog.
func (h *HandlerBundle) CreatePackage(c *gin.Context) {
	var pkg models.ServicePackage
	if err := c.ShouldBindJSON(&pkg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Catalog.CreatePackage(c.Request.Context(), &pkg); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, pkg)
}

// UpdatePackage rewrites an existing service package.
func (h *HandlerBundle) UpdatePackage(c *gin.Context) {
	var pkg models.ServicePackage
	if err := c.ShouldBindJSON(&pkg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	pkg.ID = c.Param("id")

	if err := h.Catalog.UpdatePackage(c.Request.Context(), &pkg); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, pkg)
}

// DeletePackage removes a service package.
func (h *HandlerBundle) DeletePackage(c *gin.Context) {
	if err := h.Catalog.DeletePackage(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}

// CreateAddOn adds an add-on service to the catalog.
func (h *HandlerBundle) CreateAddOn(c *gin.Context) {
	var addOn models.AddOnService
	if err := c.ShouldBindJSON(&addOn); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Catalog.CreateAddOn(c.Request.Context(), &addOn); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, addOn)
}

// UpdateAddOn rewrites an existing add-on service.
func (h *HandlerBundle) UpdateAddOn(c *gin.Context) {
	var addOn models.AddOnService
	if err := c.ShouldBindJSON(&addOn); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	addOn.ID = c.Param("id")

	if err := h.Catalog.UpdateAddOn(c.Request.Context(), &addOn); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, addOn)
}

// DeleteAddOn removes an add-on service.
func (h *HandlerBundle) DeleteAddOn(c *gin.Context) {
	if err := h.Catalog.DeleteAddOn(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}

// ListCrew returns the crew roster. Pass ?includeInactive=true for the full
// history.
func (h *HandlerBundle) ListCrew(c *gin.Context) {
	members, err := h.Crew.List(c.Request.Context(), c.Query("includeInactive") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, members)
}

// CreateCrewMember adds a field worker to the roster.
func (h *HandlerBundle) CreateCrewMember(c *gin.Context) {
	var member models.CrewMember
	if err := c.ShouldBindJSON(&member); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Crew.Create(c.Request.Context(), &member); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, member)
}

// UpdateCrewMember rewrites a roster record.
func (h *HandlerBundle) UpdateCrewMember(c *gin.Context) {
	var member models.CrewMember
	if err := c.ShouldBindJSON(&member); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	member.ID = c.Param("id")

	if err := h.Crew.Update(c.Request.Context(), &member); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, member)
}

// DeactivateCrewMember takes a member off the assignable roster.
func (h *HandlerBundle) DeactivateCrewMember(c *gin.Context) {
	if err := h.Crew.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deactivated": true})
}

// DeleteCrewMember removes the roster record outright.
func (h *HandlerBundle) DeleteCrewMember(c *gin.Context) {
	if err := h.Crew.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
