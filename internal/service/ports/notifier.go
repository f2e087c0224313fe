package ports

import (
	"context"

	"github.com/CAPTxTreeckle/Treeckle-3.0/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingsCreated(ctx context.Context, bookings []*domain.Booking)
	NotifyBookingsUpdated(ctx context.Context, bookings []*domain.Booking, previousStatuses map[int64]domain.BookingStatus)
}
