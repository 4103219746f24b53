package models

import (
	"time"
)

// Ticket defines a support ticket. Tickets can be submitted without an
// account, so the submitter is identified by the form fields rather than a
// user reference.
type Ticket struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name" example:"Amal Silva"`
	UniversityID  string    `json:"universityId" db:"university_id" example:"123456789"`
	Email         string    `json:"email" db:"email" example:"amal@campus.edu"`
	ContactNumber string    `json:"contactNumber" db:"contact_number" example:"0771234567"`
	Department    string    `json:"department" db:"department" example:"Computing"`
	Message       string    `json:"message" db:"message"`
	Attachment    *string   `json:"attachment,omitempty" db:"attachment"` // accessible path of the stored PDF, if any
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}
