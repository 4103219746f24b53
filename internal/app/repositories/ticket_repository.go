package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kerem/campusdesk/internal/app/models"
	"github.com/kerem/campusdesk/internal/pkg/apperrors"
	"github.com/kerem/campusdesk/internal/pkg/logger"
)

// TicketRepository handles database operations for support tickets
type TicketRepository struct {
	db   *pgxpool.Pool
	psql sq.StatementBuilderType
}

// NewTicketRepository creates a new TicketRepository instance
func NewTicketRepository(db *pgxpool.Pool) *TicketRepository {
	return &TicketRepository{
		db:   db,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateTicket inserts a ticket and returns it with generated fields set
func (r *TicketRepository) CreateTicket(ctx context.Context, ticket *models.Ticket) (*models.Ticket, error) {
	query := `
		INSERT INTO tickets
			(name, university_id, email, contact_number, department, message, attachment)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query,
		ticket.Name, ticket.UniversityID, ticket.Email, ticket.ContactNumber,
		ticket.Department, ticket.Message, ticket.Attachment,
	).Scan(&ticket.ID, &ticket.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Str("universityID", ticket.UniversityID).Msg("Failed to create ticket")
		return nil, err
	}

	return ticket, nil
}

// GetTicketByID retrieves a ticket by primary key
func (r *TicketRepository) GetTicketByID(ctx context.Context, id int64) (*models.Ticket, error) {
	query := `
		SELECT id, name, university_id, email, contact_number, department,
		       message, attachment, created_at
		FROM tickets
		WHERE id = $1`

	ticket := &models.Ticket{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&ticket.ID, &ticket.Name, &ticket.UniversityID, &ticket.Email,
		&ticket.ContactNumber, &ticket.Department, &ticket.Message,
		&ticket.Attachment, &ticket.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTicketNotFound
		}
		logger.Error().Err(err).Int64("ticketID", id).Msg("Failed to get ticket")
		return nil, err
	}

	return ticket, nil
}

// ListTickets retrieves a page of tickets, newest first
func (r *TicketRepository) ListTickets(ctx context.Context, offset, limit int) ([]*models.Ticket, error) {
	query := `
		SELECT id, name, university_id, email, contact_number, department,
		       message, attachment, created_at
		FROM tickets
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2`

	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list tickets")
		return nil, err
	}
	defer rows.Close()

	var tickets []*models.Ticket
	for rows.Next() {
		ticket := &models.Ticket{}
		if err := rows.Scan(
			&ticket.ID, &ticket.Name, &ticket.UniversityID, &ticket.Email,
			&ticket.ContactNumber, &ticket.Department, &ticket.Message,
			&ticket.Attachment, &ticket.CreatedAt,
		); err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}

	return tickets, rows.Err()
}

// CountTickets returns the total number of tickets
func (r *TicketRepository) CountTickets(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tickets`).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Failed to count tickets")
		return 0, err
	}
	return count, nil
}

// UpdateTicket applies a partial update built from the non-nil fields the
// service collected
func (r *TicketRepository) UpdateTicket(ctx context.Context, id int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	query, args, err := r.psql.Update("tickets").
		SetMap(updates).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("ticketID", id).Msg("Failed to update ticket")
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrTicketNotFound
	}

	return nil
}

// DeleteTicket removes a ticket by ID
func (r *TicketRepository) DeleteTicket(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM tickets WHERE id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Int64("ticketID", id).Msg("Failed to delete ticket")
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrTicketNotFound
	}

	return nil
}
