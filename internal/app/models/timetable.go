package models

import (
	"time"
)

// TimetableEntry defines a personal weekly timetable slot owned by a student
type TimetableEntry struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Day       string    `json:"day" db:"day" example:"Monday"`
	Time      string    `json:"time" db:"time_slot" example:"10:00 AM - 11:00 AM"`
	Activity  string    `json:"activity" db:"activity" example:"Group study"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
