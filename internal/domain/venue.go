package domain

import (
	"encoding/json"
	"time"
)

// Venue is a bookable physical resource owned by one organization.
type Venue struct {
	ID             int64           `json:"id"`
	OrganizationID int64           `json:"organization_id"`
	Name           string          `json:"name"`
	Capacity       *int            `json:"capacity"`
	FormFieldData  json.RawMessage `json:"form_field_data"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type CreateVenueInput struct {
	Name          string
	Capacity      *int
	FormFieldData json.RawMessage
}
