package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerem/campusdesk/internal/app/models/dto"
	"github.com/kerem/campusdesk/internal/app/services"
	"github.com/kerem/campusdesk/internal/middleware"
)

// StudentTimetableController handles the authoritative timetable endpoints
type StudentTimetableController struct {
	studentTimetableService *services.StudentTimetableService
}

// NewStudentTimetableController creates a new StudentTimetableController instance
func NewStudentTimetableController(studentTimetableService *services.StudentTimetableService) *StudentTimetableController {
	return &StudentTimetableController{studentTimetableService: studentTimetableService}
}

// CreateEntry godoc
// @Summary Publish a timetable row for a student
// @Description Creates an authoritative timetable row. Admin only.
// @Tags student-timetable
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentTimetableRequest true "Row details"
// @Success 201 {object} dto.APIResponse{data=models.StudentTimetableEntry}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /api/student-timetable [post]
func (sc *StudentTimetableController) CreateEntry(c *gin.Context) {
	var req dto.CreateStudentTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	entry, err := sc.studentTimetableService.CreateEntry(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.APIResponse{Data: entry})
}

// ListEntries godoc
// @Summary List a student's published timetable
// @Description Returns published rows, optionally narrowed by grade, batch and course. Scope defaults to the caller.
// @Tags student-timetable
// @Produce json
// @Param userId query int false "Target user ID (admin only when not the caller)"
// @Param grade query string false "Grade filter"
// @Param batch query string false "Batch filter"
// @Param course query string false "Course filter"
// @Success 200 {object} dto.APIResponse{data=[]models.StudentTimetableEntry}
// @Failure 403 {object} dto.APIResponse
// @Security BearerAuth
// @Router /api/student-timetable [get]
func (sc *StudentTimetableController) ListEntries(c *gin.Context) {
	callerID, ok := requireCallerID(c)
	if !ok {
		return
	}

	var filter dto.StudentTimetableFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	entries, err := sc.studentTimetableService.ListEntries(c.Request.Context(), callerID, &filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: entries})
}

// UpdateEntry godoc
// @Summary Update a published timetable row
// @Description Applies a partial update. Supplied fields are re-validated. Admin only.
// @Tags student-timetable
// @Accept json
// @Produce json
// @Param id path int true "Entry ID"
// @Param request body dto.UpdateStudentTimetableRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.StudentTimetableEntry}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /api/student-timetable/{id} [put]
func (sc *StudentTimetableController) UpdateEntry(c *gin.Context) {
	entryID, err := parseIDParam(c, "id")
	if err != nil {
		respondInvalidRequest(c, err)
		return
	}

	var req dto.UpdateStudentTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	entry, err := sc.studentTimetableService.UpdateEntry(c.Request.Context(), entryID, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: entry})
}

// DeleteEntry godoc
// @Summary Delete a published timetable row
// @Description Removes a row. Admin only.
// @Tags student-timetable
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /api/student-timetable/{id} [delete]
func (sc *StudentTimetableController) DeleteEntry(c *gin.Context) {
	entryID, err := parseIDParam(c, "id")
	if err != nil {
		respondInvalidRequest(c, err)
		return
	}

	if err := sc.studentTimetableService.DeleteEntry(c.Request.Context(), entryID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Student timetable entry deleted successfully"}})
}
