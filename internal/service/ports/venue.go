package ports

import (
	"context"

	"github.com/CAPTxTreeckle/Treeckle-3.0/internal/domain"
)

type VenueRepo interface {
	Create(ctx context.Context, venue *domain.Venue) error
	GetByID(ctx context.Context, organizationID, id int64) (*domain.Venue, error)
	List(ctx context.Context, organizationID int64) ([]*domain.Venue, error)
}
