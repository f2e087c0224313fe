package domain

import (
	"encoding/json"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusApproved  BookingStatus = "APPROVED"
	BookingStatusRejected  BookingStatus = "REJECTED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

type BookingStatusAction string

const (
	BookingActionApprove BookingStatusAction = "APPROVE"
	BookingActionReject  BookingStatusAction = "REJECT"
	BookingActionRevoke  BookingStatusAction = "REVOKE"
	BookingActionCancel  BookingStatusAction = "CANCEL"
)

// Booking reserves one venue for one half-open [start, end) time slot.
// Booker and Venue are populated by repository reads that join both tables.
type Booking struct {
	ID               int64           `json:"id"`
	Title            string          `json:"title"`
	BookerID         int64           `json:"booker_id"`
	VenueID          int64           `json:"venue_id"`
	StartDateTime    time.Time       `json:"start_date_time"`
	EndDateTime      time.Time       `json:"end_date_time"`
	Status           BookingStatus   `json:"status"`
	FormResponseData json.RawMessage `json:"form_response_data"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`

	Booker *User  `json:"booker,omitempty"`
	Venue  *Venue `json:"venue,omitempty"`
}

// NextStatus maps a status action onto the booking's current status.
// A CANCELLED booking is terminal and accepts no action. An action that
// would leave the status unchanged is reported as ErrSameBookingStatus.
func (b *Booking) NextStatus(action BookingStatusAction) (BookingStatus, error) {
	if b.Status == BookingStatusCancelled {
		return "", ErrCancelledBookingUpdate
	}

	switch action {
	case BookingActionCancel:
		return BookingStatusCancelled, nil
	case BookingActionApprove:
		if b.Status != BookingStatusApproved {
			return BookingStatusApproved, nil
		}
	case BookingActionRevoke:
		if b.Status != BookingStatusPending {
			return BookingStatusPending, nil
		}
	case BookingActionReject:
		if b.Status != BookingStatusRejected {
			return BookingStatusRejected, nil
		}
	}

	return "", ErrSameBookingStatus
}

// RevalidateTransition re-checks a transition against the status read under
// the row lock. Services validate against an unlocked read, so a concurrent
// writer may have moved the booking in between; a booking cancelled in that
// window must stay cancelled.
func RevalidateTransition(current, next BookingStatus) error {
	if current == BookingStatusCancelled {
		return ErrCancelledBookingUpdate
	}
	if current == next {
		return ErrSameBookingStatus
	}
	return nil
}

func (b *Booking) Interval() DateTimeInterval {
	return DateTimeInterval{Start: b.StartDateTime, End: b.EndDateTime}
}

// BookingFilter narrows repository reads. Every
// optional field left at its zero value is not filtered on; OrganizationID
// is always applied. StartDateTime/EndDateTime select bookings whose slot
// overlaps the half-open range [StartDateTime, EndDateTime).
type BookingFilter struct {
	OrganizationID int64
	BookerID       *int64
	VenueID        *int64
	Statuses       []BookingStatus
	StartDateTime  *time.Time
	EndDateTime    *time.Time
	IDs            []int64
}

// StatusChange is one already-validated transition to apply in a batch.
type StatusChange struct {
	BookingID int64
	NewStatus BookingStatus
}

type CreateBookingsInput struct {
	Title            string
	VenueID          int64
	DateTimeRanges   []DateTimeInterval
	FormResponseData json.RawMessage
}

// CreateBookingsResult reports a per-range verdict: every requested range
// ends up either in Created or in Dropped, so callers can tell "nothing was
// requested" apart from "every requested range clashed".
type CreateBookingsResult struct {
	Created []*Booking
	Dropped []DateTimeInterval
}

type BookingStatusActionInput struct {
	BookingID int64
	Action    BookingStatusAction
}
