package services

import (
	"context"
	"errors"

	"github.com/kerem/campusdesk/internal/app/models"
	"github.com/kerem/campusdesk/internal/app/models/dto"
	"github.com/kerem/campusdesk/internal/pkg/apperrors"
	"github.com/kerem/campusdesk/internal/pkg/validation"
)

// VenueStore abstracts venue persistence
type VenueStore interface {
	CreateVenue(ctx context.Context, venue *models.Venue) (*models.Venue, error)
	ListVenues(ctx context.Context) ([]*models.Venue, error)
}

// VenueService handles venue administration
type VenueService struct {
	venues VenueStore
}

// NewVenueService creates a new VenueService instance
func NewVenueService(venues VenueStore) *VenueService {
	return &VenueService{venues: venues}
}

// CreateVenue adds a venue. Names are unique and capacity must be positive.
func (s *VenueService) CreateVenue(ctx context.Context, req *dto.CreateVenueRequest) (*models.Venue, error) {
	errs := validation.Errors{}
	errs.Check("name", validation.Identifier(req.Name))
	if req.Capacity <= 0 {
		errs.Check("capacity", errors.New("capacity must be a positive number"))
	}
	if !errs.Empty() {
		return nil, apperrors.NewValidationError(errs)
	}

	return s.venues.CreateVenue(ctx, &models.Venue{
		Name:     req.Name,
		Capacity: req.Capacity,
	})
}

// ListVenues returns all venues
func (s *VenueService) ListVenues(ctx context.Context) ([]*models.Venue, error) {
	return s.venues.ListVenues(ctx)
}
