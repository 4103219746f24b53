package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerem/campusdesk/internal/app/models/dto"
	"github.com/kerem/campusdesk/internal/pkg/apperrors"
)

func TestCreateVenue(t *testing.T) {
	svc := NewVenueService(newFakeVenueStore())
	ctx := context.Background()

	venue, err := svc.CreateVenue(ctx, &dto.CreateVenueRequest{Name: "Main Hall", Capacity: 120})
	require.NoError(t, err)
	assert.NotZero(t, venue.ID)
	assert.Equal(t, "Main Hall", venue.Name)

	_, err = svc.CreateVenue(ctx, &dto.CreateVenueRequest{Name: "Main Hall", Capacity: 50})
	assert.ErrorIs(t, err, apperrors.ErrVenueAlreadyExists)
}

func TestCreateVenueValidation(t *testing.T) {
	svc := NewVenueService(newFakeVenueStore())

	_, err := svc.CreateVenue(context.Background(), &dto.CreateVenueRequest{Name: "!", Capacity: 0})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	details := apperrors.Details(err)
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "capacity")
}

func TestListVenues(t *testing.T) {
	store := newFakeVenueStore()
	svc := NewVenueService(store)
	ctx := context.Background()

	_, err := svc.CreateVenue(ctx, &dto.CreateVenueRequest{Name: "Lab 2", Capacity: 30})
	require.NoError(t, err)

	venues, err := svc.ListVenues(ctx)
	require.NoError(t, err)
	assert.Len(t, venues, 1)
}
