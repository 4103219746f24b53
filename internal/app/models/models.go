package models

// RoleType defines the account role for authorization decisions
type RoleType string

// Role constants. Checks are exact-match: an admin is not implicitly a student.
const (
	RoleStudent RoleType = "student"
	RoleAdmin   RoleType = "admin"
)

// IsValid reports whether the role is one of the two known roles.
func (r RoleType) IsValid() bool {
	return r == RoleStudent || r == RoleAdmin
}
