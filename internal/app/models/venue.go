package models

// Venue defines a bookable room or hall. Names are unique.
type Venue struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name" example:"Main Hall"`
	Capacity int    `json:"capacity" db:"capacity" example:"120"`
}
