package services

import (
	"context"

	appauth "github.com/kerem/campusdesk/internal/app/auth"
	"github.com/kerem/campusdesk/internal/app/models"
	"github.com/kerem/campusdesk/internal/app/models/dto"
	"github.com/kerem/campusdesk/internal/pkg/apperrors"
	"github.com/kerem/campusdesk/internal/pkg/validation"
)

// StudentTimetableStore abstracts authoritative timetable persistence
type StudentTimetableStore interface {
	CreateEntry(ctx context.Context, entry *models.StudentTimetableEntry) (*models.StudentTimetableEntry, error)
	GetEntryByID(ctx context.Context, id int64) (*models.StudentTimetableEntry, error)
	ListEntries(ctx context.Context, filter *dto.StudentTimetableFilter) ([]*models.StudentTimetableEntry, error)
	UpdateEntry(ctx context.Context, id int64, updates map[string]interface{}) error
	DeleteEntry(ctx context.Context, id int64) error
}

// StudentTimetableService handles the authoritative timetables admins
// publish to students. Mutations are admin-gated at the route level.
type StudentTimetableService struct {
	entries StudentTimetableStore
	users   UserStore
	authz   *appauth.Service
}

// NewStudentTimetableService creates a new StudentTimetableService instance
func NewStudentTimetableService(entries StudentTimetableStore, users UserStore, authz *appauth.Service) *StudentTimetableService {
	return &StudentTimetableService{
		entries: entries,
		users:   users,
		authz:   authz,
	}
}

func validateStudentTimetableFields(errs validation.Errors, req *dto.CreateStudentTimetableRequest) {
	errs.Check("time", validation.TimeRange(req.Time))
	errs.Check("day", validation.Day(req.Day))
	errs.Check("teacher", validation.AlphaName(req.Teacher))
	errs.Check("subject", validation.Identifier(req.Subject))
	errs.Check("venue", validation.Identifier(req.Venue))
	errs.Check("grade", validation.Grade(req.Grade))
	errs.Check("batch", validation.Batch(req.Batch))
	errs.Check("course", validation.Identifier(req.Course))
}

// CreateEntry publishes a timetable row for a student. The target student
// must exist and every field must pass its format rule; failures are
// reported together.
func (s *StudentTimetableService) CreateEntry(ctx context.Context, req *dto.CreateStudentTimetableRequest) (*models.StudentTimetableEntry, error) {
	if _, err := s.users.GetUserByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	errs := validation.Errors{}
	validateStudentTimetableFields(errs, req)
	if !errs.Empty() {
		return nil, apperrors.NewValidationError(errs)
	}

	return s.entries.CreateEntry(ctx, &models.StudentTimetableEntry{
		UserID:  req.UserID,
		Time:    req.Time,
		Day:     req.Day,
		Teacher: req.Teacher,
		Subject: req.Subject,
		Venue:   req.Venue,
		Grade:   req.Grade,
		Batch:   req.Batch,
		Course:  req.Course,
	})
}

// ListEntries returns a student's published timetable, optionally narrowed
// by grade, batch and course. The scope defaults to the caller; listing
// another student's timetable requires the admin role.
func (s *StudentTimetableService) ListEntries(ctx context.Context, callerID int64, filter *dto.StudentTimetableFilter) ([]*models.StudentTimetableEntry, error) {
	if filter.UserID == 0 {
		filter.UserID = callerID
	}
	if filter.UserID != callerID {
		if err := s.authz.RequireRole(ctx, callerID, models.RoleAdmin); err != nil {
			return nil, err
		}
	}

	return s.entries.ListEntries(ctx, filter)
}

// UpdateEntry applies a partial update to a published row. Supplied fields
// are re-validated together; fields left nil retain their stored values.
func (s *StudentTimetableService) UpdateEntry(ctx context.Context, entryID int64, req *dto.UpdateStudentTimetableRequest) (*models.StudentTimetableEntry, error) {
	errs := validation.Errors{}
	updates := map[string]interface{}{}

	if req.Time != nil {
		errs.Check("time", validation.TimeRange(*req.Time))
		updates["time_slot"] = *req.Time
	}
	if req.Day != nil {
		errs.Check("day", validation.Day(*req.Day))
		updates["day"] = *req.Day
	}
	if req.Teacher != nil {
		errs.Check("teacher", validation.AlphaName(*req.Teacher))
		updates["teacher"] = *req.Teacher
	}
	if req.Subject != nil {
		errs.Check("subject", validation.Identifier(*req.Subject))
		updates["subject"] = *req.Subject
	}
	if req.Venue != nil {
		errs.Check("venue", validation.Identifier(*req.Venue))
		updates["venue"] = *req.Venue
	}
	if req.Grade != nil {
		errs.Check("grade", validation.Grade(*req.Grade))
		updates["grade"] = *req.Grade
	}
	if req.Batch != nil {
		errs.Check("batch", validation.Batch(*req.Batch))
		updates["batch"] = *req.Batch
	}
	if req.Course != nil {
		errs.Check("course", validation.Identifier(*req.Course))
		updates["course"] = *req.Course
	}

	if !errs.Empty() {
		return nil, apperrors.NewValidationError(errs)
	}

	if err := s.entries.UpdateEntry(ctx, entryID, updates); err != nil {
		return nil, err
	}

	return s.entries.GetEntryByID(ctx, entryID)
}

// DeleteEntry removes a published row
func (s *StudentTimetableService) DeleteEntry(ctx context.Context, entryID int64) error {
	return s.entries.DeleteEntry(ctx, entryID)
}
