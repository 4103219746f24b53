package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerem/campusdesk/internal/app/models/dto"
	"github.com/kerem/campusdesk/internal/app/services"
	"github.com/kerem/campusdesk/internal/middleware"
)

// VenueController handles venue endpoints
type VenueController struct {
	venueService *services.VenueService
}

// NewVenueController creates a new VenueController instance
func NewVenueController(venueService *services.VenueService) *VenueController {
	return &VenueController{venueService: venueService}
}

// CreateVenue godoc
// @Summary Add a venue
// @Description Creates a venue with a unique name. Admin only.
// @Tags venues
// @Accept json
// @Produce json
// @Param request body dto.CreateVenueRequest true "Venue details"
// @Success 201 {object} dto.APIResponse{data=models.Venue}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Security BearerAuth
// @Router /api/venues [post]
func (vc *VenueController) CreateVenue(c *gin.Context) {
	var req dto.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	venue, err := vc.venueService.CreateVenue(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.APIResponse{Data: venue})
}

// ListVenues godoc
// @Summary List venues
// @Description Returns all venues ordered by name
// @Tags venues
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Venue}
// @Router /api/venues [get]
func (vc *VenueController) ListVenues(c *gin.Context) {
	venues, err := vc.venueService.ListVenues(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: venues})
}
