package dto

// CreateVenueRequest represents an admin venue creation
type CreateVenueRequest struct {
	Name     string `json:"name" binding:"required" example:"Main Hall"`
	Capacity int    `json:"capacity" binding:"required,gt=0" example:"120"`
}
