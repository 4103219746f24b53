package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerem/campusdesk/internal/app/models/dto"
	"github.com/kerem/campusdesk/internal/app/services"
	"github.com/kerem/campusdesk/internal/middleware"
	"github.com/kerem/campusdesk/internal/pkg/helpers"
)

// TicketController handles support ticket endpoints
type TicketController struct {
	ticketService *services.TicketService
}

// NewTicketController creates a new TicketController instance
func NewTicketController(ticketService *services.TicketService) *TicketController {
	return &TicketController{ticketService: ticketService}
}

// CreateTicket godoc
// @Summary Submit a support ticket
// @Description Accepts a multipart form with an optional PDF attachment. No account required.
// @Tags tickets
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Submitter name"
// @Param universityId formData string true "9-digit university ID"
// @Param email formData string true "Contact email"
// @Param contactNumber formData string true "10-digit contact number"
// @Param department formData string true "Department"
// @Param message formData string true "Message (min 10 characters)"
// @Param attachment formData file false "PDF attachment"
// @Success 201 {object} dto.APIResponse{data=dto.CreateTicketResponse}
// @Failure 400 {object} dto.APIResponse
// @Router /api/tickets [post]
func (tc *TicketController) CreateTicket(c *gin.Context) {
	var req dto.CreateTicketRequest
	if err := c.ShouldBind(&req); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	// Absent attachment is fine; only a present non-PDF one is rejected
	attachment, err := c.FormFile("attachment")
	if err != nil {
		attachment = nil
	}

	ticket, err := tc.ticketService.CreateTicket(c.Request.Context(), &req, attachment)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.APIResponse{Data: dto.CreateTicketResponse{
		Message: "Ticket submitted successfully",
		Ticket:  *ticket,
	}})
}

// GetTicket godoc
// @Summary Get a ticket
// @Tags tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} dto.APIResponse{data=models.Ticket}
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /api/tickets/{id} [get]
func (tc *TicketController) GetTicket(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		respondInvalidRequest(c, err)
		return
	}

	ticket, err := tc.ticketService.GetTicket(c.Request.Context(), ticketID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: ticket})
}

// ListTickets godoc
// @Summary List tickets
// @Description Returns a page of tickets, newest first. Admin only.
// @Tags tickets
// @Produce json
// @Param page query int false "1-based page number"
// @Param pageSize query int false "Page size (max 100)"
// @Success 200 {object} dto.APIResponse{data=dto.TicketListResponse}
// @Failure 403 {object} dto.APIResponse
// @Security BearerAuth
// @Router /api/tickets [get]
func (tc *TicketController) ListTickets(c *gin.Context) {
	page, pageSize := helpers.ParsePagination(c)

	list, err := tc.ticketService.ListTickets(c.Request.Context(), page, pageSize)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: list})
}

// UpdateTicket godoc
// @Summary Update a ticket
// @Description Applies a partial multipart update. A new PDF replaces the stored attachment.
// @Tags tickets
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} dto.APIResponse{data=models.Ticket}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /api/tickets/{id} [put]
func (tc *TicketController) UpdateTicket(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		respondInvalidRequest(c, err)
		return
	}

	var req dto.UpdateTicketRequest
	if err := c.ShouldBind(&req); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	attachment, err := c.FormFile("attachment")
	if err != nil {
		attachment = nil
	}

	ticket, err := tc.ticketService.UpdateTicket(c.Request.Context(), ticketID, &req, attachment)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: ticket})
}

// DeleteTicket godoc
// @Summary Delete a ticket
// @Description Removes a ticket and its stored attachment
// @Tags tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /api/tickets/{id} [delete]
func (tc *TicketController) DeleteTicket(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		respondInvalidRequest(c, err)
		return
	}

	if err := tc.ticketService.DeleteTicket(c.Request.Context(), ticketID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Ticket deleted successfully"}})
}
