package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kerem/campusdesk/internal/app/models"
	"github.com/kerem/campusdesk/internal/pkg/apperrors"
	"github.com/kerem/campusdesk/internal/pkg/dberrors"
	"github.com/kerem/campusdesk/internal/pkg/logger"
)

// UserRepository handles database operations for user accounts
type UserRepository struct {
	db   *pgxpool.Pool
	psql sq.StatementBuilderType
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db:   db,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateUser inserts a new user and returns it with generated fields set
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (email, password, role)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query, user.Email, user.Password, user.Role).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("email", user.Email).Msg("Failed to create user")
		return nil, err
	}

	return user, nil
}

// GetUserByID retrieves a user by primary key
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, email, password, role, created_at, updated_at
		FROM users
		WHERE id = $1`

	user := &models.User{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.Password, &user.Role,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Failed to get user by ID")
		return nil, err
	}

	return user, nil
}

// GetUserByEmail retrieves a user by email address
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, password, role, created_at, updated_at
		FROM users
		WHERE email = $1`

	user := &models.User{}
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.Role,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Failed to get user by email")
		return nil, err
	}

	return user, nil
}

// ListUsers retrieves all users ordered by creation time
func (r *UserRepository) ListUsers(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT id, email, password, role, created_at, updated_at
		FROM users
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list users")
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(
			&user.ID, &user.Email, &user.Password, &user.Role,
			&user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// UpdateUser applies a partial update built from the non-nil fields the
// service collected. Returns ErrUserNotFound when no row matches.
func (r *UserRepository) UpdateUser(ctx context.Context, id int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	query, args, err := r.psql.Update("users").
		SetMap(updates).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Failed to update user")
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// DeleteUser removes a user by ID. Timetable rows referencing the user are
// left in place and become orphaned listings.
func (r *UserRepository) DeleteUser(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Int64("userID", id).Msg("Failed to delete user")
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
