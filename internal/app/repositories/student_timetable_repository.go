package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kerem/campusdesk/internal/app/models"
	"github.com/kerem/campusdesk/internal/app/models/dto"
	"github.com/kerem/campusdesk/internal/pkg/apperrors"
	"github.com/kerem/campusdesk/internal/pkg/logger"
)

// StudentTimetableRepository handles database operations for the
// authoritative timetables admins publish to students
type StudentTimetableRepository struct {
	db   *pgxpool.Pool
	psql sq.StatementBuilderType
}

// NewStudentTimetableRepository creates a new StudentTimetableRepository instance
func NewStudentTimetableRepository(db *pgxpool.Pool) *StudentTimetableRepository {
	return &StudentTimetableRepository{
		db:   db,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateEntry inserts a student timetable row
func (r *StudentTimetableRepository) CreateEntry(ctx context.Context, entry *models.StudentTimetableEntry) (*models.StudentTimetableEntry, error) {
	query := `
		INSERT INTO student_timetables
			(user_id, time_slot, day, teacher, subject, venue, grade, batch, course)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		entry.UserID, entry.Time, entry.Day, entry.Teacher, entry.Subject,
		entry.Venue, entry.Grade, entry.Batch, entry.Course,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Int64("userID", entry.UserID).Msg("Failed to create student timetable entry")
		return nil, err
	}

	return entry, nil
}

// GetEntryByID retrieves a single row by primary key
func (r *StudentTimetableRepository) GetEntryByID(ctx context.Context, id int64) (*models.StudentTimetableEntry, error) {
	query := `
		SELECT id, user_id, time_slot, day, teacher, subject, venue,
		       grade, batch, course, created_at, updated_at
		FROM student_timetables
		WHERE id = $1`

	entry := &models.StudentTimetableEntry{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&entry.ID, &entry.UserID, &entry.Time, &entry.Day, &entry.Teacher,
		&entry.Subject, &entry.Venue, &entry.Grade, &entry.Batch,
		&entry.Course, &entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTimetableEntryNotFound
		}
		logger.Error().Err(err).Int64("entryID", id).Msg("Failed to get student timetable entry")
		return nil, err
	}

	return entry, nil
}

// ListEntries retrieves rows matching the filter. The user scope is always
// applied; grade, batch and course narrow the result when supplied.
func (r *StudentTimetableRepository) ListEntries(ctx context.Context, filter *dto.StudentTimetableFilter) ([]*models.StudentTimetableEntry, error) {
	builder := r.psql.Select(
		"id", "user_id", "time_slot", "day", "teacher", "subject", "venue",
		"grade", "batch", "course", "created_at", "updated_at",
	).From("student_timetables").
		Where(sq.Eq{"user_id": filter.UserID}).
		OrderBy("created_at ASC")

	if filter.Grade != "" {
		builder = builder.Where(sq.Eq{"grade": filter.Grade})
	}
	if filter.Batch != "" {
		builder = builder.Where(sq.Eq{"batch": filter.Batch})
	}
	if filter.Course != "" {
		builder = builder.Where(sq.Eq{"course": filter.Course})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", filter.UserID).Msg("Failed to list student timetable entries")
		return nil, err
	}
	defer rows.Close()

	var entries []*models.StudentTimetableEntry
	for rows.Next() {
		entry := &models.StudentTimetableEntry{}
		if err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.Time, &entry.Day, &entry.Teacher,
			&entry.Subject, &entry.Venue, &entry.Grade, &entry.Batch,
			&entry.Course, &entry.CreatedAt, &entry.UpdatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// UpdateEntry applies a partial update built from the non-nil fields the
// service collected
func (r *StudentTimetableRepository) UpdateEntry(ctx context.Context, id int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	query, args, err := r.psql.Update("student_timetables").
		SetMap(updates).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("entryID", id).Msg("Failed to update student timetable entry")
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrTimetableEntryNotFound
	}

	return nil
}

// DeleteEntry removes a row by ID
func (r *StudentTimetableRepository) DeleteEntry(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM student_timetables WHERE id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Int64("entryID", id).Msg("Failed to delete student timetable entry")
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrTimetableEntryNotFound
	}

	return nil
}
