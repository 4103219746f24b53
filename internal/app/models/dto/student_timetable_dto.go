package dto

// CreateStudentTimetableRequest represents an admin-built authoritative
// timetable row. All eight descriptive fields are required.
type CreateStudentTimetableRequest struct {
	UserID  int64  `json:"userId" binding:"required" example:"1"`
	Time    string `json:"time" binding:"required" example:"10:00 AM - 11:00 AM"`
	Day     string `json:"day" binding:"required" example:"Monday"`
	Teacher string `json:"teacher" binding:"required" example:"Jane Perera"`
	Subject string `json:"subject" binding:"required" example:"Data Structures"`
	Venue   string `json:"venue" binding:"required" example:"Lab 2"`
	Grade   string `json:"grade" binding:"required" example:"year 1 semester 1"`
	Batch   string `json:"batch" binding:"required" example:"batch 1"`
	Course  string `json:"course" binding:"required" example:"Software Engineering"`
}

// UpdateStudentTimetableRequest represents a partial update. Nil fields
// retain their stored values; supplied fields are re-validated.
type UpdateStudentTimetableRequest struct {
	Time    *string `json:"time,omitempty"`
	Day     *string `json:"day,omitempty"`
	Teacher *string `json:"teacher,omitempty"`
	Subject *string `json:"subject,omitempty"`
	Venue   *string `json:"venue,omitempty"`
	Grade   *string `json:"grade,omitempty"`
	Batch   *string `json:"batch,omitempty"`
	Course  *string `json:"course,omitempty"`
}

// StudentTimetableFilter narrows an owner-scoped listing. Omitted filters
// match any value; supplied filters are ANDed.
type StudentTimetableFilter struct {
	UserID int64  `form:"userId"`
	Grade  string `form:"grade"`
	Batch  string `form:"batch"`
	Course string `form:"course"`
}
