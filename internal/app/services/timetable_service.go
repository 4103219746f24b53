package services

import (
	"context"

	appauth "github.com/kerem/campusdesk/internal/app/auth"
	"github.com/kerem/campusdesk/internal/app/models"
	"github.com/kerem/campusdesk/internal/app/models/dto"
	"github.com/kerem/campusdesk/internal/pkg/apperrors"
	"github.com/kerem/campusdesk/internal/pkg/validation"
)

// TimetableStore abstracts personal timetable persistence
type TimetableStore interface {
	CreateEntry(ctx context.Context, entry *models.TimetableEntry) (*models.TimetableEntry, error)
	GetEntryByID(ctx context.Context, id int64) (*models.TimetableEntry, error)
	ListEntriesByUser(ctx context.Context, userID int64) ([]*models.TimetableEntry, error)
	DeleteEntry(ctx context.Context, id int64) error
}

// TimetableService handles personal timetable entries students build for
// themselves
type TimetableService struct {
	entries TimetableStore
	users   UserStore
	authz   *appauth.Service
}

// NewTimetableService creates a new TimetableService instance
func NewTimetableService(entries TimetableStore, users UserStore, authz *appauth.Service) *TimetableService {
	return &TimetableService{
		entries: entries,
		users:   users,
		authz:   authz,
	}
}

// CreateEntry adds a personal timetable slot. The entry defaults to the
// caller; creating one for another user requires the admin role, and the
// owner must exist.
func (s *TimetableService) CreateEntry(ctx context.Context, callerID int64, req *dto.CreateTimetableRequest) (*models.TimetableEntry, error) {
	ownerID := req.UserID
	if ownerID == 0 {
		ownerID = callerID
	}
	if ownerID != callerID {
		if err := s.authz.RequireRole(ctx, callerID, models.RoleAdmin); err != nil {
			return nil, err
		}
	}

	if _, err := s.users.GetUserByID(ctx, ownerID); err != nil {
		return nil, err
	}

	errs := validation.Errors{}
	errs.Check("day", validation.Day(req.Day))
	errs.Check("time", validation.TimeRange(req.Time))
	errs.Check("activity", validation.Activity(req.Activity))
	if !errs.Empty() {
		return nil, apperrors.NewValidationError(errs)
	}

	return s.entries.CreateEntry(ctx, &models.TimetableEntry{
		UserID:   ownerID,
		Day:      req.Day,
		Time:     req.Time,
		Activity: req.Activity,
	})
}

// ListEntries returns a user's personal timetable. The target defaults to
// the caller; reading another user's entries requires the admin role, and
// the owner must exist.
func (s *TimetableService) ListEntries(ctx context.Context, callerID, userID int64) ([]*models.TimetableEntry, error) {
	if userID == 0 {
		userID = callerID
	}
	if err := s.authz.RequireSelfOrAdmin(ctx, callerID, userID); err != nil {
		return nil, err
	}
	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.entries.ListEntriesByUser(ctx, userID)
}

// DeleteEntry removes a personal timetable slot. Only the owner or an admin
// may delete it.
func (s *TimetableService) DeleteEntry(ctx context.Context, callerID, entryID int64) error {
	entry, err := s.entries.GetEntryByID(ctx, entryID)
	if err != nil {
		return err
	}

	if entry.UserID != callerID {
		if err := s.authz.RequireRole(ctx, callerID, models.RoleAdmin); err != nil {
			return err
		}
	}

	return s.entries.DeleteEntry(ctx, entryID)
}
