package dto

// CreateTimetableRequest represents a personal timetable entry submission.
// UserID is optional; it defaults to the authenticated caller and only an
// admin may set it to another user.
type CreateTimetableRequest struct {
	UserID   int64  `json:"userId"`
	Day      string `json:"day" binding:"required" example:"Monday"`
	Time     string `json:"time" binding:"required" example:"10:00 AM - 11:00 AM"`
	Activity string `json:"activity" binding:"required" example:"Group study"`
}

// TimetableFilter represents personal timetable list query parameters.
// UserID defaults to the authenticated caller when omitted.
type TimetableFilter struct {
	UserID int64 `form:"userId"`
}
