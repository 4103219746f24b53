package auth

import (
	"context"
	"errors"

	"github.com/kerem/campusdesk/internal/app/models"
	"github.com/kerem/campusdesk/internal/pkg/apperrors"
)

// RoleStore looks up accounts for authorization decisions
type RoleStore interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// Service makes role and ownership decisions against the current account
// state rather than the role baked into a token. A demoted or deleted
// account loses access as soon as its next request arrives.
type Service struct {
	users RoleStore
}

// NewService creates a new authorization service
func NewService(users RoleStore) *Service {
	return &Service{users: users}
}

// RequireRole verifies that the caller holds exactly the required role.
// Roles are not hierarchical.
func (s *Service) RequireRole(ctx context.Context, callerID int64, required models.RoleType) error {
	user, err := s.users.GetUserByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrPermissionDenied
		}
		return err
	}

	if user.Role != required {
		return apperrors.ErrPermissionDenied
	}

	return nil
}

// RequireSelfOrAdmin verifies that the caller either owns the target
// resource or holds the admin role.
func (s *Service) RequireSelfOrAdmin(ctx context.Context, callerID, targetID int64) error {
	if callerID == targetID {
		return nil
	}
	return s.RequireRole(ctx, callerID, models.RoleAdmin)
}
