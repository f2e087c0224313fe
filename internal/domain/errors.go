package domain

import "errors"

var (
	ErrVenueNotFound   = errors.New("venue not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrCancelledBookingUpdate   = errors.New("cannot update status of cancelled booking")
	ErrSameBookingStatus        = errors.New("booking already has the requested status")
	ErrClashingApprovedBookings = errors.New("cannot approve booking due to other existing clashing approved bookings")
	ErrNoBookingPermission      = errors.New("no permission to update booking")
)

var (
	ErrEmailTaken = errors.New("email is already taken")
	ErrVenueTaken = errors.New("venue name is already taken")
)

var ErrValidation = errors.New("validation error")
