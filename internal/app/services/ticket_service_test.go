package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerem/campusdesk/internal/app/models/dto"
	"github.com/kerem/campusdesk/internal/pkg/apperrors"
	"github.com/kerem/campusdesk/internal/pkg/validation"
)

func newTestTicketService() (*TicketService, *fakeTicketStore, *fakeStorage) {
	tickets := newFakeTicketStore()
	storage := &fakeStorage{}
	return NewTicketService(tickets, storage), tickets, storage
}

func validTicketRequest() *dto.CreateTicketRequest {
	return &dto.CreateTicketRequest{
		Name:          "Amal Silva",
		UniversityID:  "123456789",
		Email:         "amal@campus.edu",
		ContactNumber: "0771234567",
		Department:    "Computing",
		Message:       "The projector in Lab 2 is broken",
	}
}

func TestCreateTicketWithoutAttachment(t *testing.T) {
	svc, _, storage := newTestTicketService()

	ticket, err := svc.CreateTicket(context.Background(), validTicketRequest(), nil)
	require.NoError(t, err)
	assert.NotZero(t, ticket.ID)
	assert.Nil(t, ticket.Attachment)
	assert.Empty(t, storage.saved)
}

func TestCreateTicketWithPDFAttachment(t *testing.T) {
	svc, _, storage := newTestTicketService()

	ticket, err := svc.CreateTicket(context.Background(), validTicketRequest(),
		fileHeader("report.pdf", validation.PDFMimeType))
	require.NoError(t, err)
	require.NotNil(t, ticket.Attachment)
	assert.Equal(t, "uploads/report.pdf", *ticket.Attachment)
	assert.Equal(t, []string{"uploads/report.pdf"}, storage.saved)
}

func TestCreateTicketRejectsNonPDFBeforeStorage(t *testing.T) {
	svc, tickets, storage := newTestTicketService()

	_, err := svc.CreateTicket(context.Background(), validTicketRequest(),
		fileHeader("photo.png", "image/png"))
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, apperrors.Details(err), "attachment")

	assert.Empty(t, storage.saved)
	assert.Empty(t, tickets.tickets)
}

func TestCreateTicketValidationReportsAllFields(t *testing.T) {
	svc, _, _ := newTestTicketService()

	_, err := svc.CreateTicket(context.Background(), &dto.CreateTicketRequest{
		Name:          "A1",
		UniversityID:  "12345",
		Email:         "not-an-email",
		ContactNumber: "077",
		Department:    "42",
		Message:       "too short",
	}, nil)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	details := apperrors.Details(err)
	for _, field := range []string{"name", "universityId", "email", "contactNumber", "department", "message"} {
		assert.Contains(t, details, field)
	}
}

func TestGetTicketNotFound(t *testing.T) {
	svc, _, _ := newTestTicketService()

	_, err := svc.GetTicket(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrTicketNotFound)
}

func TestListTicketsPagination(t *testing.T) {
	svc, _, _ := newTestTicketService()
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		_, err := svc.CreateTicket(ctx, validTicketRequest(), nil)
		require.NoError(t, err)
	}

	list, err := svc.ListTickets(ctx, 2, 5)
	require.NoError(t, err)
	assert.Len(t, list.Tickets, 5)
	assert.Equal(t, 2, list.Pagination.CurrentPage)
	assert.Equal(t, 5, list.Pagination.PageSize)
	assert.Equal(t, int64(12), list.Pagination.TotalItems)
	assert.Equal(t, 3, list.Pagination.TotalPages)
}

func TestUpdateTicketPartialRetention(t *testing.T) {
	svc, _, _ := newTestTicketService()
	ctx := context.Background()

	ticket, err := svc.CreateTicket(ctx, validTicketRequest(), nil)
	require.NoError(t, err)

	newMessage := "The projector has now caught fire"
	updated, err := svc.UpdateTicket(ctx, ticket.ID, &dto.UpdateTicketRequest{Message: &newMessage}, nil)
	require.NoError(t, err)
	assert.Equal(t, newMessage, updated.Message)
	assert.Equal(t, "Amal Silva", updated.Name)
	assert.Equal(t, "123456789", updated.UniversityID)
}

func TestUpdateTicketReplacesAttachment(t *testing.T) {
	svc, _, storage := newTestTicketService()
	ctx := context.Background()

	ticket, err := svc.CreateTicket(ctx, validTicketRequest(),
		fileHeader("old.pdf", validation.PDFMimeType))
	require.NoError(t, err)

	updated, err := svc.UpdateTicket(ctx, ticket.ID, &dto.UpdateTicketRequest{},
		fileHeader("new.pdf", validation.PDFMimeType))
	require.NoError(t, err)
	require.NotNil(t, updated.Attachment)
	assert.Equal(t, "uploads/new.pdf", *updated.Attachment)

	// The replaced file is removed after the row update succeeds
	assert.Equal(t, []string{"uploads/old.pdf"}, storage.deleted)
}

func TestUpdateTicketRejectsNonPDF(t *testing.T) {
	svc, _, storage := newTestTicketService()
	ctx := context.Background()

	ticket, err := svc.CreateTicket(ctx, validTicketRequest(), nil)
	require.NoError(t, err)

	_, err = svc.UpdateTicket(ctx, ticket.ID, &dto.UpdateTicketRequest{},
		fileHeader("photo.png", "image/png"))
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, storage.saved)
}

func TestDeleteTicketRemovesAttachment(t *testing.T) {
	svc, tickets, storage := newTestTicketService()
	ctx := context.Background()

	ticket, err := svc.CreateTicket(ctx, validTicketRequest(),
		fileHeader("report.pdf", validation.PDFMimeType))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTicket(ctx, ticket.ID))
	assert.Empty(t, tickets.tickets)
	assert.Equal(t, []string{"uploads/report.pdf"}, storage.deleted)
}

func TestDeleteTicketWithoutAttachment(t *testing.T) {
	svc, _, storage := newTestTicketService()
	ctx := context.Background()

	ticket, err := svc.CreateTicket(ctx, validTicketRequest(), nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTicket(ctx, ticket.ID))
	assert.Empty(t, storage.deleted)
}

func TestDeleteTicketNotFound(t *testing.T) {
	svc, _, _ := newTestTicketService()

	err := svc.DeleteTicket(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrTicketNotFound)
}
