package ports

import (
	"context"

	"github.com/CAPTxTreeckle/Treeckle-3.0/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context, organizationID int64) ([]*domain.User, error)
}
