package services

import (
	"context"
	"mime/multipart"

	"github.com/kerem/campusdesk/internal/app/models"
	"github.com/kerem/campusdesk/internal/app/models/dto"
	"github.com/kerem/campusdesk/internal/pkg/apperrors"
	"github.com/kerem/campusdesk/internal/pkg/filestorage"
	"github.com/kerem/campusdesk/internal/pkg/helpers"
	"github.com/kerem/campusdesk/internal/pkg/logger"
	"github.com/kerem/campusdesk/internal/pkg/validation"
)

// TicketStore abstracts support ticket persistence
type TicketStore interface {
	CreateTicket(ctx context.Context, ticket *models.Ticket) (*models.Ticket, error)
	GetTicketByID(ctx context.Context, id int64) (*models.Ticket, error)
	ListTickets(ctx context.Context, offset, limit int) ([]*models.Ticket, error)
	CountTickets(ctx context.Context) (int64, error)
	UpdateTicket(ctx context.Context, id int64, updates map[string]interface{}) error
	DeleteTicket(ctx context.Context, id int64) error
}

// TicketService handles support ticket submission and administration
type TicketService struct {
	tickets TicketStore
	storage filestorage.FileStorage
}

// NewTicketService creates a new TicketService instance
func NewTicketService(tickets TicketStore, storage filestorage.FileStorage) *TicketService {
	return &TicketService{
		tickets: tickets,
		storage: storage,
	}
}

// CreateTicket validates and stores a submitted ticket. The attachment is
// optional but must be a PDF; the content type is checked before anything
// touches disk.
func (s *TicketService) CreateTicket(ctx context.Context, req *dto.CreateTicketRequest, attachment *multipart.FileHeader) (*models.Ticket, error) {
	errs := validation.Errors{}
	errs.Check("name", validation.AlphaName(req.Name))
	errs.Check("universityId", validation.UniversityID(req.UniversityID))
	errs.Check("email", validation.Email(req.Email))
	errs.Check("contactNumber", validation.ContactNumber(req.ContactNumber))
	errs.Check("department", validation.AlphaName(req.Department))
	errs.Check("message", validation.Message(req.Message))
	if attachment != nil {
		errs.Check("attachment", validation.AttachmentType(attachment.Header.Get("Content-Type")))
	}
	if !errs.Empty() {
		return nil, apperrors.NewValidationError(errs)
	}

	var storedPath *string
	if attachment != nil {
		path, err := s.storage.SaveFile(attachment)
		if err != nil {
			return nil, err
		}
		storedPath = &path
	}

	ticket, err := s.tickets.CreateTicket(ctx, &models.Ticket{
		Name:          req.Name,
		UniversityID:  req.UniversityID,
		Email:         req.Email,
		ContactNumber: req.ContactNumber,
		Department:    req.Department,
		Message:       req.Message,
		Attachment:    storedPath,
	})
	if err != nil {
		if storedPath != nil {
			s.removeAttachment(*storedPath)
		}
		return nil, err
	}

	return ticket, nil
}

// GetTicket retrieves a ticket by ID
func (s *TicketService) GetTicket(ctx context.Context, id int64) (*models.Ticket, error) {
	return s.tickets.GetTicketByID(ctx, id)
}

// ListTickets returns a page of tickets, newest first, with pagination
// metadata
func (s *TicketService) ListTickets(ctx context.Context, page, pageSize int) (*dto.TicketListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	tickets, err := s.tickets.ListTickets(ctx, int(offset), limit)
	if err != nil {
		return nil, err
	}

	total, err := s.tickets.CountTickets(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.TicketListResponse{
		Tickets:    tickets,
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// UpdateTicket applies a partial update. A new attachment replaces the old
// one; the replaced file is removed after the row update succeeds.
func (s *TicketService) UpdateTicket(ctx context.Context, id int64, req *dto.UpdateTicketRequest, attachment *multipart.FileHeader) (*models.Ticket, error) {
	existing, err := s.tickets.GetTicketByID(ctx, id)
	if err != nil {
		return nil, err
	}

	errs := validation.Errors{}
	updates := map[string]interface{}{}

	if req.Name != nil {
		errs.Check("name", validation.AlphaName(*req.Name))
		updates["name"] = *req.Name
	}
	if req.UniversityID != nil {
		errs.Check("universityId", validation.UniversityID(*req.UniversityID))
		updates["university_id"] = *req.UniversityID
	}
	if req.Email != nil {
		errs.Check("email", validation.Email(*req.Email))
		updates["email"] = *req.Email
	}
	if req.ContactNumber != nil {
		errs.Check("contactNumber", validation.ContactNumber(*req.ContactNumber))
		updates["contact_number"] = *req.ContactNumber
	}
	if req.Department != nil {
		errs.Check("department", validation.AlphaName(*req.Department))
		updates["department"] = *req.Department
	}
	if req.Message != nil {
		errs.Check("message", validation.Message(*req.Message))
		updates["message"] = *req.Message
	}
	if attachment != nil {
		errs.Check("attachment", validation.AttachmentType(attachment.Header.Get("Content-Type")))
	}
	if !errs.Empty() {
		return nil, apperrors.NewValidationError(errs)
	}

	var newPath string
	if attachment != nil {
		newPath, err = s.storage.SaveFile(attachment)
		if err != nil {
			return nil, err
		}
		updates["attachment"] = newPath
	}

	if err := s.tickets.UpdateTicket(ctx, id, updates); err != nil {
		if newPath != "" {
			s.removeAttachment(newPath)
		}
		return nil, err
	}

	if newPath != "" && existing.Attachment != nil {
		s.removeAttachment(*existing.Attachment)
	}

	return s.tickets.GetTicketByID(ctx, id)
}

// DeleteTicket removes a ticket and its stored attachment. The file removal
// is best-effort; a failure is logged but does not undo the delete.
func (s *TicketService) DeleteTicket(ctx context.Context, id int64) error {
	ticket, err := s.tickets.GetTicketByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.tickets.DeleteTicket(ctx, id); err != nil {
		return err
	}

	if ticket.Attachment != nil {
		s.removeAttachment(*ticket.Attachment)
	}

	return nil
}

func (s *TicketService) removeAttachment(path string) {
	if err := s.storage.DeleteFile(path); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("Failed to remove ticket attachment")
	}
}
