package models

import (
	"time"
)

// StudentTimetableEntry defines an authoritative timetable row built by an
// admin for a student. All eight descriptive fields are required and
// format-validated before persistence.
type StudentTimetableEntry struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Time      string    `json:"time" db:"time_slot" example:"10:00 AM - 11:00 AM"`
	Day       string    `json:"day" db:"day" example:"Monday"`
	Teacher   string    `json:"teacher" db:"teacher" example:"Jane Perera"`
	Subject   string    `json:"subject" db:"subject" example:"Data Structures"`
	Venue     string    `json:"venue" db:"venue" example:"Lab 2"`
	Grade     string    `json:"grade" db:"grade" example:"year 1 semester 1"`
	Batch     string    `json:"batch" db:"batch" example:"batch 1"`
	Course    string    `json:"course" db:"course" example:"Software Engineering"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
