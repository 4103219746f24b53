package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field rule patterns
var (
	// 12-hour range, e.g. "10:00 AM - 11:00 AM"; meridiem is case-insensitive
	TimeRangePattern = `(?i)^(0?[1-9]|1[0-2]):[0-5][0-9] ?[AP]M\s*-\s*(0?[1-9]|1[0-2]):[0-5][0-9] ?[AP]M$`

	// Exact grade label, e.g. "year 1 semester 2"
	GradePattern = `^year\s[1-4]\ssemester\s[1-2]$`

	// Batch label, e.g. "batch 1" or "batch 1.1"
	BatchPattern = `^batch\s+[0-9]+(\.[0-9]+)?$`

	// Letters and spaces, at least 2 characters (person and department names)
	AlphaNamePattern = `^[A-Za-z\s]{2,}$`

	// Letters, digits and spaces, at least 2 characters (subject, venue, course)
	IdentifierPattern = `^[A-Za-z0-9\s]{2,}$`

	// Student university identifier - 9 digits
	UniversityIDPattern = `^\d{9}$`

	// Contact number - 10 digits
	ContactNumberPattern = `^\d{10}$`

	// Email - local@domain.tld shape
	EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	TimeRange     *regexp.Regexp
	Grade         *regexp.Regexp
	Batch         *regexp.Regexp
	AlphaName     *regexp.Regexp
	Identifier    *regexp.Regexp
	UniversityID  *regexp.Regexp
	ContactNumber *regexp.Regexp
	Email         *regexp.Regexp
}{
	TimeRange:     regexp.MustCompile(TimeRangePattern),
	Grade:         regexp.MustCompile(GradePattern),
	Batch:         regexp.MustCompile(BatchPattern),
	AlphaName:     regexp.MustCompile(AlphaNamePattern),
	Identifier:    regexp.MustCompile(IdentifierPattern),
	UniversityID:  regexp.MustCompile(UniversityIDPattern),
	ContactNumber: regexp.MustCompile(ContactNumberPattern),
	Email:         regexp.MustCompile(EmailPattern),
}

// Message and activity length limits
const (
	MessageMinLength  = 10
	ActivityMaxLength = 50
)

var weekdays = map[string]struct{}{
	"monday":    {},
	"tuesday":   {},
	"wednesday": {},
	"thursday":  {},
	"friday":    {},
	"saturday":  {},
	"sunday":    {},
}

// PDFMimeType is the only attachment content type accepted for tickets.
const PDFMimeType = "application/pdf"

// TimeRange validates a 12-hour "HH:MM AM/PM - HH:MM AM/PM" range string.
func TimeRange(value string) error {
	if !CompiledPatterns.TimeRange.MatchString(value) {
		return errors.New("time must be in 12-hour range format (HH:MM AM/PM - HH:MM AM/PM)")
	}
	return nil
}

// Day validates a weekday name, case-insensitively.
func Day(value string) error {
	if _, ok := weekdays[strings.ToLower(value)]; !ok {
		return errors.New("day must be a valid weekday name")
	}
	return nil
}

// AlphaName validates free-text fields restricted to letters and spaces
// (teacher, department, submitter name).
func AlphaName(value string) error {
	if !CompiledPatterns.AlphaName.MatchString(value) {
		return errors.New("must be at least 2 characters and contain only letters and spaces")
	}
	return nil
}

// Identifier validates free-text fields allowing letters, digits and spaces
// (subject, venue, course).
func Identifier(value string) error {
	if !CompiledPatterns.Identifier.MatchString(value) {
		return errors.New("must be at least 2 characters and contain only letters, digits and spaces")
	}
	return nil
}

// Grade validates the "year Y semester S" label, years 1-4, semesters 1-2.
func Grade(value string) error {
	if !CompiledPatterns.Grade.MatchString(value) {
		return errors.New(`grade must be in format "year Y semester S" (e.g. year 1 semester 1)`)
	}
	return nil
}

// Batch validates the "batch N" label; N is an integer or one decimal place.
func Batch(value string) error {
	if !CompiledPatterns.Batch.MatchString(value) {
		return errors.New(`batch must be "batch" followed by a number (e.g. batch 1, batch 1.1)`)
	}
	return nil
}

// UniversityID validates a 9-digit university identifier.
func UniversityID(value string) error {
	if !CompiledPatterns.UniversityID.MatchString(value) {
		return errors.New("university ID must be a 9-digit number")
	}
	return nil
}

// ContactNumber validates a 10-digit contact number.
func ContactNumber(value string) error {
	if !CompiledPatterns.ContactNumber.MatchString(value) {
		return errors.New("contact number must be a 10-digit number")
	}
	return nil
}

// Email validates the local@domain.tld shape.
func Email(value string) error {
	if !CompiledPatterns.Email.MatchString(value) {
		return errors.New("must be a valid email address")
	}
	return nil
}

// Message validates a free-text support message. Lengths count characters,
// not bytes.
func Message(value string) error {
	if utf8.RuneCountInString(value) < MessageMinLength {
		return fmt.Errorf("message must be at least %d characters", MessageMinLength)
	}
	return nil
}

// Activity validates a personal timetable activity string.
func Activity(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("activity is required")
	}
	if utf8.RuneCountInString(value) > ActivityMaxLength {
		return fmt.Errorf("activity must be at most %d characters", ActivityMaxLength)
	}
	return nil
}

// AttachmentType validates an uploaded file content type before storage.
func AttachmentType(mimeType string) error {
	if mimeType != PDFMimeType {
		return errors.New("only PDF files are allowed")
	}
	return nil
}
