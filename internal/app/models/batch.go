package models

import (
	"time"
)

// Batch defines an admin-managed student batch. The payload is
// admin-supplied free-form JSON, persisted as-is.
type Batch struct {
	ID        int64                  `json:"id" db:"id"`
	Data      map[string]interface{} `json:"data" db:"data"`
	CreatedAt time.Time              `json:"createdAt" db:"created_at"`
}
