package dto

import (
	"github.com/kerem/campusdesk/internal/app/models"
)

// CreateTicketRequest represents a multipart support ticket submission.
// The attachment part is handled separately by the controller.
type CreateTicketRequest struct {
	Name          string `form:"name" binding:"required" example:"Amal Silva"`
	UniversityID  string `form:"universityId" binding:"required" example:"123456789"`
	Email         string `form:"email" binding:"required" example:"amal@campus.edu"`
	ContactNumber string `form:"contactNumber" binding:"required" example:"0771234567"`
	Department    string `form:"department" binding:"required" example:"Computing"`
	Message       string `form:"message" binding:"required"`
}

// UpdateTicketRequest represents a partial multipart ticket update. Nil
// fields retain their stored values.
type UpdateTicketRequest struct {
	Name          *string `form:"name"`
	UniversityID  *string `form:"universityId"`
	Email         *string `form:"email"`
	ContactNumber *string `form:"contactNumber"`
	Department    *string `form:"department"`
	Message       *string `form:"message"`
}

// CreateTicketResponse acknowledges a submitted ticket
type CreateTicketResponse struct {
	Message string        `json:"message" example:"Ticket submitted successfully"`
	Ticket  models.Ticket `json:"ticket"`
}

// TicketListResponse is a paginated admin listing of tickets
type TicketListResponse struct {
	Tickets    []*models.Ticket `json:"tickets"`
	Pagination PaginationInfo   `json:"pagination"`
}
