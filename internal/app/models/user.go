package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Email     string    `json:"email" db:"email" example:"student@campus.edu"`            // User's email address
	Password  string    `json:"-" db:"password"`                                          // User's hashed password (excluded from JSON)
	Role      RoleType  `json:"role" db:"role" example:"student"`                         // User's role (student or admin)
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp when the user was last updated
}
