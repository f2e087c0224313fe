package dto

import "encoding/json"

type DateTimeRangeRequest struct {
	StartDateTime int64 `json:"start_date_time" binding:"required"`
	EndDateTime   int64 `json:"end_date_time" binding:"required"`
}

type CreateBookingsRequest struct {
	Title            string                 `json:"title" binding:"required"`
	VenueID          int64                  `json:"venue_id" binding:"required"`
	DateTimeRanges   []DateTimeRangeRequest `json:"date_time_ranges" binding:"dive"`
	FormResponseData json.RawMessage        `json:"form_response_data"`
}

type UpdateBookingStatusRequest struct {
	Action string `json:"action" binding:"required,oneof=APPROVE REJECT REVOKE CANCEL"`
}

type BookingStatusActionRequest struct {
	BookingID int64  `json:"booking_id" binding:"required"`
	Action    string `json:"action" binding:"required,oneof=APPROVE REJECT REVOKE CANCEL"`
}

type UpdateBookingStatusesRequest struct {
	Actions []BookingStatusActionRequest `json:"actions" binding:"required,min=1,dive"`
}

type DeleteBookingsRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1"`
}

type CreateVenueRequest struct {
	Name          string          `json:"name" binding:"required"`
	Capacity      *int            `json:"capacity"`
	FormFieldData json.RawMessage `json:"form_field_data"`
}

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"omitempty,oneof=ADMIN ORGANIZER RESIDENT"`
}
