package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/CAPTxTreeckle/Treeckle-3.0/internal/domain"
	"github.com/CAPTxTreeckle/Treeckle-3.0/internal/service/ports/mocks"
)

func TestVenueService_Create_Success(t *testing.T) {
	venueRepo := mocks.NewMockVenueRepo(t)
	svc := NewVenueService(venueRepo, newTestLogger(t))

	venueRepo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, v *domain.Venue) {
		v.ID = 10
	}).Return(nil)

	venue, err := svc.Create(context.Background(), testAdmin, domain.CreateVenueInput{Name: "  Common Hall  "})

	require.NoError(t, err)
	assert.Equal(t, int64(10), venue.ID)
	assert.Equal(t, "Common Hall", venue.Name)
	assert.Equal(t, testAdmin.OrganizationID, venue.OrganizationID)
	assert.Equal(t, json.RawMessage("[]"), venue.FormFieldData)
}

func TestVenueService_Create_EmptyName(t *testing.T) {
	venueRepo := mocks.NewMockVenueRepo(t)
	svc := NewVenueService(venueRepo, newTestLogger(t))

	_, err := svc.Create(context.Background(), testAdmin, domain.CreateVenueInput{Name: "   "})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVenueService_Create_NonPositiveCapacity(t *testing.T) {
	venueRepo := mocks.NewMockVenueRepo(t)
	svc := NewVenueService(venueRepo, newTestLogger(t))

	capacity := 0
	_, err := svc.Create(context.Background(), testAdmin, domain.CreateVenueInput{Name: "Hall", Capacity: &capacity})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVenueService_Create_DuplicateName(t *testing.T) {
	venueRepo := mocks.NewMockVenueRepo(t)
	svc := NewVenueService(venueRepo, newTestLogger(t))

	venueRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrVenueTaken)

	_, err := svc.Create(context.Background(), testAdmin, domain.CreateVenueInput{Name: "Hall"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVenueTaken)
}

func TestVenueService_List(t *testing.T) {
	venueRepo := mocks.NewMockVenueRepo(t)
	svc := NewVenueService(venueRepo, newTestLogger(t))

	venueRepo.EXPECT().List(mock.Anything, int64(1)).Return([]*domain.Venue{testVenue}, nil)

	venues, err := svc.List(context.Background(), testAdmin)

	require.NoError(t, err)
	assert.Len(t, venues, 1)
}
