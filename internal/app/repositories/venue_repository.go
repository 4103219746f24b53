package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kerem/campusdesk/internal/app/models"
	"github.com/kerem/campusdesk/internal/pkg/apperrors"
	"github.com/kerem/campusdesk/internal/pkg/dberrors"
	"github.com/kerem/campusdesk/internal/pkg/logger"
)

// VenueRepository handles database operations for venues
type VenueRepository struct {
	db *pgxpool.Pool
}

// NewVenueRepository creates a new VenueRepository instance
func NewVenueRepository(db *pgxpool.Pool) *VenueRepository {
	return &VenueRepository{db: db}
}

// CreateVenue inserts a venue. Venue names are unique.
func (r *VenueRepository) CreateVenue(ctx context.Context, venue *models.Venue) (*models.Venue, error) {
	query := `
		INSERT INTO venues (name, capacity)
		VALUES ($1, $2)
		RETURNING id`

	err := r.db.QueryRow(ctx, query, venue.Name, venue.Capacity).Scan(&venue.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "venues_name_key") {
			return nil, apperrors.ErrVenueAlreadyExists
		}
		logger.Error().Err(err).Str("name", venue.Name).Msg("Failed to create venue")
		return nil, err
	}

	return venue, nil
}

// ListVenues retrieves all venues ordered by name
func (r *VenueRepository) ListVenues(ctx context.Context) ([]*models.Venue, error) {
	query := `
		SELECT id, name, capacity
		FROM venues
		ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list venues")
		return nil, err
	}
	defer rows.Close()

	var venues []*models.Venue
	for rows.Next() {
		venue := &models.Venue{}
		if err := rows.Scan(&venue.ID, &venue.Name, &venue.Capacity); err != nil {
			return nil, err
		}
		venues = append(venues, venue)
	}

	return venues, rows.Err()
}
