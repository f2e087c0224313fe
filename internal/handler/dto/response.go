package dto

import (
	"encoding/json"

	"github.com/CAPTxTreeckle/Treeckle-3.0/internal/domain"
)

type BookingResponse struct {
	ID               int64           `json:"id"`
	Title            string          `json:"title"`
	Booker           *UserResponse   `json:"booker,omitempty"`
	Venue            *VenueResponse  `json:"venue,omitempty"`
	StartDateTime    int64           `json:"start_date_time"`
	EndDateTime      int64           `json:"end_date_time"`
	Status           string          `json:"status"`
	FormResponseData json.RawMessage `json:"form_response_data"`
	CreatedAt        int64           `json:"created_at"`
	UpdatedAt        int64           `json:"updated_at"`
}

type DateTimeRangeResponse struct {
	StartDateTime int64 `json:"start_date_time"`
	EndDateTime   int64 `json:"end_date_time"`
}

type CreateBookingsResponse struct {
	Bookings []BookingResponse       `json:"bookings"`
	Dropped  []DateTimeRangeResponse `json:"dropped"`
}

type VenueResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Capacity      *int            `json:"capacity,omitempty"`
	FormFieldData json.RawMessage `json:"form_field_data,omitempty"`
	CreatedAt     int64           `json:"created_at,omitempty"`
	UpdatedAt     int64           `json:"updated_at,omitempty"`
}

type UserResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt int64  `json:"created_at,omitempty"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:               b.ID,
		Title:            b.Title,
		StartDateTime:    b.StartDateTime.UnixMilli(),
		EndDateTime:      b.EndDateTime.UnixMilli(),
		Status:           string(b.Status),
		FormResponseData: b.FormResponseData,
		CreatedAt:        b.CreatedAt.UnixMilli(),
		UpdatedAt:        b.UpdatedAt.UnixMilli(),
	}

	if b.Booker != nil {
		booker := ToUserResponse(b.Booker)
		resp.Booker = &booker
	}
	if b.Venue != nil {
		resp.Venue = &VenueResponse{ID: b.Venue.ID, Name: b.Venue.Name}
	}

	return resp
}

func ToBookingResponses(bookings []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, ToBookingResponse(b))
	}
	return resp
}

func ToDateTimeRangeResponses(ranges []domain.DateTimeInterval) []DateTimeRangeResponse {
	resp := make([]DateTimeRangeResponse, 0, len(ranges))
	for _, r := range ranges {
		resp = append(resp, DateTimeRangeResponse{
			StartDateTime: r.Start.UnixMilli(),
			EndDateTime:   r.End.UnixMilli(),
		})
	}
	return resp
}

func ToVenueResponse(v *domain.Venue) VenueResponse {
	return VenueResponse{
		ID:            v.ID,
		Name:          v.Name,
		Capacity:      v.Capacity,
		FormFieldData: v.FormFieldData,
		CreatedAt:     v.CreatedAt.UnixMilli(),
		UpdatedAt:     v.UpdatedAt.UnixMilli(),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.UnixMilli(),
	}
}
