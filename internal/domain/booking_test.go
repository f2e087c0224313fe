package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooking_NextStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  BookingStatus
		action  BookingStatusAction
		want    BookingStatus
		wantErr error
	}{
		{"approve pending", BookingStatusPending, BookingActionApprove, BookingStatusApproved, nil},
		{"approve rejected", BookingStatusRejected, BookingActionApprove, BookingStatusApproved, nil},
		{"approve approved is no-op", BookingStatusApproved, BookingActionApprove, "", ErrSameBookingStatus},

		{"reject pending", BookingStatusPending, BookingActionReject, BookingStatusRejected, nil},
		{"reject approved", BookingStatusApproved, BookingActionReject, BookingStatusRejected, nil},
		{"reject rejected is no-op", BookingStatusRejected, BookingActionReject, "", ErrSameBookingStatus},

		{"revoke approved", BookingStatusApproved, BookingActionRevoke, BookingStatusPending, nil},
		{"revoke rejected", BookingStatusRejected, BookingActionRevoke, BookingStatusPending, nil},
		{"revoke pending is no-op", BookingStatusPending, BookingActionRevoke, "", ErrSameBookingStatus},

		{"cancel pending", BookingStatusPending, BookingActionCancel, BookingStatusCancelled, nil},
		{"cancel approved", BookingStatusApproved, BookingActionCancel, BookingStatusCancelled, nil},
		{"cancel rejected", BookingStatusRejected, BookingActionCancel, BookingStatusCancelled, nil},

		{"cancelled is terminal for approve", BookingStatusCancelled, BookingActionApprove, "", ErrCancelledBookingUpdate},
		{"cancelled is terminal for reject", BookingStatusCancelled, BookingActionReject, "", ErrCancelledBookingUpdate},
		{"cancelled is terminal for revoke", BookingStatusCancelled, BookingActionRevoke, "", ErrCancelledBookingUpdate},
		{"cancelled is terminal for cancel", BookingStatusCancelled, BookingActionCancel, "", ErrCancelledBookingUpdate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.status}

			got, err := b.NextStatus(tt.action)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRevalidateTransition(t *testing.T) {
	tests := []struct {
		name    string
		current BookingStatus
		next    BookingStatus
		wantErr error
	}{
		{"pending to approved", BookingStatusPending, BookingStatusApproved, nil},
		{"approved to rejected", BookingStatusApproved, BookingStatusRejected, nil},
		{"pending to cancelled", BookingStatusPending, BookingStatusCancelled, nil},

		// A concurrent cancel committed between the unlocked read and the
		// row lock must not be overwritten.
		{"cancelled under the lock stays terminal", BookingStatusCancelled, BookingStatusApproved, ErrCancelledBookingUpdate},
		{"cancelled beats a duplicate cancel", BookingStatusCancelled, BookingStatusCancelled, ErrCancelledBookingUpdate},

		{"duplicate approve is a no-op", BookingStatusApproved, BookingStatusApproved, ErrSameBookingStatus},
		{"duplicate reject is a no-op", BookingStatusRejected, BookingStatusRejected, ErrSameBookingStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RevalidateTransition(tt.current, tt.next)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
