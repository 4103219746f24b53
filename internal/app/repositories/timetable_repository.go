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

// TimetableRepository handles database operations for personal timetable entries
type TimetableRepository struct {
	db   *pgxpool.Pool
	psql sq.StatementBuilderType
}

// NewTimetableRepository creates a new TimetableRepository instance
func NewTimetableRepository(db *pgxpool.Pool) *TimetableRepository {
	return &TimetableRepository{
		db:   db,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateEntry inserts a personal timetable entry
func (r *TimetableRepository) CreateEntry(ctx context.Context, entry *models.TimetableEntry) (*models.TimetableEntry, error) {
	query := `
		INSERT INTO timetables (user_id, day, time_slot, activity)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query, entry.UserID, entry.Day, entry.Time, entry.Activity).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Int64("userID", entry.UserID).Msg("Failed to create timetable entry")
		return nil, err
	}

	return entry, nil
}

// GetEntryByID retrieves a single entry by primary key
func (r *TimetableRepository) GetEntryByID(ctx context.Context, id int64) (*models.TimetableEntry, error) {
	query := `
		SELECT id, user_id, day, time_slot, activity, created_at
		FROM timetables
		WHERE id = $1`

	entry := &models.TimetableEntry{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&entry.ID, &entry.UserID, &entry.Day, &entry.Time,
		&entry.Activity, &entry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTimetableEntryNotFound
		}
		logger.Error().Err(err).Int64("entryID", id).Msg("Failed to get timetable entry")
		return nil, err
	}

	return entry, nil
}

// ListEntriesByUser retrieves all entries belonging to a user
func (r *TimetableRepository) ListEntriesByUser(ctx context.Context, userID int64) ([]*models.TimetableEntry, error) {
	query, args, err := r.psql.
		Select("id", "user_id", "day", "time_slot", "activity", "created_at").
		From("timetables").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Failed to list timetable entries")
		return nil, err
	}
	defer rows.Close()

	var entries []*models.TimetableEntry
	for rows.Next() {
		entry := &models.TimetableEntry{}
		if err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.Day, &entry.Time,
			&entry.Activity, &entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// DeleteEntry removes an entry by ID
func (r *TimetableRepository) DeleteEntry(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM timetables WHERE id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Int64("entryID", id).Msg("Failed to delete timetable entry")
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrTimetableEntryNotFound
	}

	return nil
}
