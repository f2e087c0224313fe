package ports

import (
	"context"

	"github.com/CAPTxTreeckle/Treeckle-3.0/internal/domain"
)

type BookingRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	CreateBatch(ctx context.Context, bookings []*domain.Booking) ([]*domain.Booking, error)
	Transition(ctx context.Context, bookingID int64, newStatus domain.BookingStatus) ([]*domain.Booking, map[int64]domain.BookingStatus, error)
	TransitionBatch(ctx context.Context, changes []domain.StatusChange) ([]*domain.Booking, map[int64]domain.BookingStatus, error)
	DeleteByIDs(ctx context.Context, organizationID int64, ids []int64) ([]*domain.Booking, error)
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, organizationID int64, status domain.BookingStatus) (int64, error)
}
