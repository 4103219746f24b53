package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerem/campusdesk/internal/app/models/dto"
	"github.com/kerem/campusdesk/internal/app/services"
	"github.com/kerem/campusdesk/internal/middleware"
)

// TimetableController handles personal timetable endpoints
type TimetableController struct {
	timetableService *services.TimetableService
}

// NewTimetableController creates a new TimetableController instance
func NewTimetableController(timetableService *services.TimetableService) *TimetableController {
	return &TimetableController{timetableService: timetableService}
}

// CreateEntry godoc
// @Summary Add a personal timetable slot
// @Description Adds a slot to the caller's timetable. Admins may target another user.
// @Tags timetable
// @Accept json
// @Produce json
// @Param request body dto.CreateTimetableRequest true "Slot details"
// @Success 201 {object} dto.APIResponse{data=models.TimetableEntry}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /api/timetable [post]
func (tc *TimetableController) CreateEntry(c *gin.Context) {
	callerID, ok := requireCallerID(c)
	if !ok {
		return
	}

	var req dto.CreateTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	entry, err := tc.timetableService.CreateEntry(c.Request.Context(), callerID, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.APIResponse{Data: entry})
}

// ListEntries godoc
// @Summary List a user's personal timetable
// @Description Returns all slots for a user. The userId query defaults to the caller; others require admin.
// @Tags timetable
// @Produce json
// @Param userId query int false "User ID (defaults to the caller)"
// @Success 200 {object} dto.APIResponse{data=[]models.TimetableEntry}
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /api/timetable [get]
func (tc *TimetableController) ListEntries(c *gin.Context) {
	callerID, ok := requireCallerID(c)
	if !ok {
		return
	}

	var filter dto.TimetableFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	entries, err := tc.timetableService.ListEntries(c.Request.Context(), callerID, filter.UserID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: entries})
}

// DeleteEntry godoc
// @Summary Delete a personal timetable slot
// @Description Removes a slot. Only the owner or an admin may delete it.
// @Tags timetable
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /api/timetable/{id} [delete]
func (tc *TimetableController) DeleteEntry(c *gin.Context) {
	callerID, ok := requireCallerID(c)
	if !ok {
		return
	}

	entryID, err := parseIDParam(c, "id")
	if err != nil {
		respondInvalidRequest(c, err)
		return
	}

	if err := tc.timetableService.DeleteEntry(c.Request.Context(), callerID, entryID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Timetable entry deleted successfully"}})
}
