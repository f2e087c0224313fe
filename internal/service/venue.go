package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wb-go/wbf/logger"

	"github.com/CAPTxTreeckle/Treeckle-3.0/internal/domain"
	"github.com/CAPTxTreeckle/Treeckle-3.0/internal/service/ports"
)

type VenueService struct {
	venueRepo ports.VenueRepo
	logger    logger.Logger
}

func NewVenueService(venueRepo ports.VenueRepo, logger logger.Logger) *VenueService {
	return &VenueService{
		venueRepo: venueRepo,
		logger:    logger,
	}
}

func (s *VenueService) Create(ctx context.Context, requester *domain.User, input domain.CreateVenueInput) (*domain.Venue, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: venue name must not be empty", domain.ErrValidation)
	}
	if input.Capacity != nil && *input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: venue capacity must be positive", domain.ErrValidation)
	}

	formFields := input.FormFieldData
	if formFields == nil {
		formFields = json.RawMessage("[]")
	}

	venue := &domain.Venue{
		OrganizationID: requester.OrganizationID,
		Name:           name,
		Capacity:       input.Capacity,
		FormFieldData:  formFields,
	}

	if err := s.venueRepo.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("create venue: %w", err)
	}

	s.logger.Info("venue created",
		logger.Int64("venue_id", venue.ID),
		logger.Int64("organization_id", venue.OrganizationID),
		logger.String("name", venue.Name),
	)

	return venue, nil
}

func (s *VenueService) Get(ctx context.Context, requester *domain.User, id int64) (*domain.Venue, error) {
	return s.venueRepo.GetByID(ctx, requester.OrganizationID, id)
}

func (s *VenueService) List(ctx context.Context, requester *domain.User) ([]*domain.Venue, error) {
	return s.venueRepo.List(ctx, requester.OrganizationID)
}
