package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kerem/campusdesk/internal/app/models"
	"github.com/kerem/campusdesk/internal/pkg/apperrors"
)

type stubRoleStore struct {
	users map[int64]*models.User
}

func (s *stubRoleStore) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func newTestAuthz() *Service {
	return NewService(&stubRoleStore{users: map[int64]*models.User{
		1: {ID: 1, Role: models.RoleAdmin},
		2: {ID: 2, Role: models.RoleStudent},
	}})
}

func TestRequireRole(t *testing.T) {
	svc := newTestAuthz()
	ctx := context.Background()

	assert.NoError(t, svc.RequireRole(ctx, 1, models.RoleAdmin))
	assert.NoError(t, svc.RequireRole(ctx, 2, models.RoleStudent))

	// Roles are exact-match in both directions
	assert.ErrorIs(t, svc.RequireRole(ctx, 2, models.RoleAdmin), apperrors.ErrPermissionDenied)
	assert.ErrorIs(t, svc.RequireRole(ctx, 1, models.RoleStudent), apperrors.ErrPermissionDenied)
}

func TestRequireRoleUnknownCaller(t *testing.T) {
	svc := newTestAuthz()

	// A deleted account with a still-valid token gets denied, not a 404
	err := svc.RequireRole(context.Background(), 99, models.RoleAdmin)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestRequireSelfOrAdmin(t *testing.T) {
	svc := newTestAuthz()
	ctx := context.Background()

	assert.NoError(t, svc.RequireSelfOrAdmin(ctx, 2, 2))
	assert.NoError(t, svc.RequireSelfOrAdmin(ctx, 1, 2))
	assert.ErrorIs(t, svc.RequireSelfOrAdmin(ctx, 2, 1), apperrors.ErrPermissionDenied)
}
