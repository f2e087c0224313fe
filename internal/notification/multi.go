package notification

import (
	"context"

	"github.com/CAPTxTreeckle/Treeckle-3.0/internal/domain"
	"github.com/CAPTxTreeckle/Treeckle-3.0/internal/service/ports"
)

// MultiNotifier fans each notification out to every wrapped notifier.
type MultiNotifier struct {
	notifiers []ports.BookingNotifier
}

func NewMultiNotifier(notifiers ...ports.BookingNotifier) *MultiNotifier {
	return &MultiNotifier{notifiers: notifiers}
}

func (m *MultiNotifier) NotifyBookingsCreated(ctx context.Context, bookings []*domain.Booking) {
	for _, n := range m.notifiers {
		n.NotifyBookingsCreated(ctx, bookings)
	}
}

func (m *MultiNotifier) NotifyBookingsUpdated(ctx context.Context, bookings []*domain.Booking, previousStatuses map[int64]domain.BookingStatus) {
	for _, n := range m.notifiers {
		n.NotifyBookingsUpdated(ctx, bookings, previousStatuses)
	}
}
