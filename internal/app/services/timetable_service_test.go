package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appauth "github.com/kerem/campusdesk/internal/app/auth"
	"github.com/kerem/campusdesk/internal/app/models"
	"github.com/kerem/campusdesk/internal/app/models/dto"
	"github.com/kerem/campusdesk/internal/pkg/apperrors"
)

func newTestTimetableService() (*TimetableService, *fakeUserStore, *fakeTimetableStore) {
	users := newFakeUserStore()
	entries := newFakeTimetableStore()
	return NewTimetableService(entries, users, appauth.NewService(users)), users, entries
}

func seedUser(users *fakeUserStore, email string, role models.RoleType) *models.User {
	return users.add(&models.User{Email: email, Password: "x", Role: role})
}

func validTimetableRequest() *dto.CreateTimetableRequest {
	return &dto.CreateTimetableRequest{
		Day:      "Monday",
		Time:     "10:00 AM - 11:00 AM",
		Activity: "Group study",
	}
}

func TestCreateEntryForSelf(t *testing.T) {
	svc, users, _ := newTestTimetableService()
	student := seedUser(users, "student@campus.edu", models.RoleStudent)

	entry, err := svc.CreateEntry(context.Background(), student.ID, validTimetableRequest())
	require.NoError(t, err)
	assert.Equal(t, student.ID, entry.UserID)
	assert.Equal(t, "Monday", entry.Day)
	assert.NotZero(t, entry.ID)
}

func TestCreateEntryForOtherRequiresAdmin(t *testing.T) {
	svc, users, _ := newTestTimetableService()
	ctx := context.Background()

	admin := seedUser(users, "admin@campus.edu", models.RoleAdmin)
	student := seedUser(users, "student@campus.edu", models.RoleStudent)
	other := seedUser(users, "other@campus.edu", models.RoleStudent)

	req := validTimetableRequest()
	req.UserID = other.ID
	_, err := svc.CreateEntry(ctx, student.ID, req)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	entry, err := svc.CreateEntry(ctx, admin.ID, req)
	require.NoError(t, err)
	assert.Equal(t, other.ID, entry.UserID)
}

func TestCreateEntryOwnerMustExist(t *testing.T) {
	svc, users, _ := newTestTimetableService()
	admin := seedUser(users, "admin@campus.edu", models.RoleAdmin)

	req := validTimetableRequest()
	req.UserID = 99
	_, err := svc.CreateEntry(context.Background(), admin.ID, req)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestCreateEntryValidationReportsAllFields(t *testing.T) {
	svc, users, entries := newTestTimetableService()
	student := seedUser(users, "student@campus.edu", models.RoleStudent)

	_, err := svc.CreateEntry(context.Background(), student.ID, &dto.CreateTimetableRequest{
		Day:      "Funday",
		Time:     "25:00 - 26:00",
		Activity: strings.Repeat("x", 51),
	})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	details := apperrors.Details(err)
	assert.Contains(t, details, "day")
	assert.Contains(t, details, "time")
	assert.Contains(t, details, "activity")

	// Nothing is persisted when any field fails
	assert.Empty(t, entries.entries)
}

func TestListEntriesScope(t *testing.T) {
	svc, users, _ := newTestTimetableService()
	ctx := context.Background()

	admin := seedUser(users, "admin@campus.edu", models.RoleAdmin)
	student := seedUser(users, "student@campus.edu", models.RoleStudent)
	other := seedUser(users, "other@campus.edu", models.RoleStudent)

	_, err := svc.CreateEntry(ctx, student.ID, validTimetableRequest())
	require.NoError(t, err)

	own, err := svc.ListEntries(ctx, student.ID, student.ID)
	require.NoError(t, err)
	assert.Len(t, own, 1)

	_, err = svc.ListEntries(ctx, other.ID, student.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	viewed, err := svc.ListEntries(ctx, admin.ID, student.ID)
	require.NoError(t, err)
	assert.Len(t, viewed, 1)
}

func TestListEntriesDefaultsToCaller(t *testing.T) {
	svc, users, _ := newTestTimetableService()
	ctx := context.Background()
	student := seedUser(users, "student@campus.edu", models.RoleStudent)

	_, err := svc.CreateEntry(ctx, student.ID, validTimetableRequest())
	require.NoError(t, err)

	// Omitted target scopes the listing to the caller
	entries, err := svc.ListEntries(ctx, student.ID, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, student.ID, entries[0].UserID)
}

func TestListEntriesOwnerMustExist(t *testing.T) {
	svc, users, _ := newTestTimetableService()
	admin := seedUser(users, "admin@campus.edu", models.RoleAdmin)

	_, err := svc.ListEntries(context.Background(), admin.ID, 99)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestDeleteEntryOwnership(t *testing.T) {
	svc, users, _ := newTestTimetableService()
	ctx := context.Background()

	admin := seedUser(users, "admin@campus.edu", models.RoleAdmin)
	student := seedUser(users, "student@campus.edu", models.RoleStudent)
	other := seedUser(users, "other@campus.edu", models.RoleStudent)

	entry, err := svc.CreateEntry(ctx, student.ID, validTimetableRequest())
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteEntry(ctx, other.ID, entry.ID), apperrors.ErrPermissionDenied)
	require.NoError(t, svc.DeleteEntry(ctx, student.ID, entry.ID))

	entry, err = svc.CreateEntry(ctx, student.ID, validTimetableRequest())
	require.NoError(t, err)
	require.NoError(t, svc.DeleteEntry(ctx, admin.ID, entry.ID))
}

func TestDeleteEntryNotFound(t *testing.T) {
	svc, users, _ := newTestTimetableService()
	student := seedUser(users, "student@campus.edu", models.RoleStudent)

	err := svc.DeleteEntry(context.Background(), student.ID, 42)
	assert.ErrorIs(t, err, apperrors.ErrTimetableEntryNotFound)
}
