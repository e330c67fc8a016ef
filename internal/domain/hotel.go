package domain

import (
	"context"
	"time"
)

// ConferenceHotel describes a hotel's room block scoped to one conference,
// including the transportation-capability flags used to filter choices.
// Read-only reference data for the registration flow.
// swagger:model ConferenceHotel
type ConferenceHotel struct {
	ID           string `json:"id"`
	ConferenceID string `json:"conference"`
	HotelID      string `json:"hotel"`

	HotelName     string `json:"hotelName"`
	HotelLongName string `json:"hotelLongName,omitempty"`
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`

	ContactName  string `json:"contactName,omitempty"`
	ContactEmail string `json:"contactEmail,omitempty"`

	HasBusParking      bool `json:"hasBusParking"`
	HasTransitToVenue  bool `json:"hasTransitToVenue"`
	RequiresCreditCard bool `json:"requiresCreditCard"`
	Priority           int  `json:"priority"`

	TaxRatePercentage float64 `json:"taxRatePercentage"`
	TaxPerRoomNight   float64 `json:"taxPerRoomNight,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HotelFilters narrows a hotel-offering listing by transportation capability.
// A nil field means the capability is not filtered on.
type HotelFilters struct {
	HasBusParking     *bool
	HasTransitToVenue *bool
}

// ConferenceHotelRepository defines storage operations for hotel offerings.
type ConferenceHotelRepository interface {
	// ListByConference returns the conference's hotel offerings matching the
	// filters, ordered by priority.
	ListByConference(ctx context.Context, conferenceID string, filters HotelFilters) ([]*ConferenceHotel, error)
	GetByID(ctx context.Context, id string) (*ConferenceHotel, error)
}

// HotelService defines read-only hotel-offering lookups.
type HotelService interface {
	ListForConference(ctx context.Context, conferenceID string, filters HotelFilters) ([]*ConferenceHotel, error)
	GetByID(ctx context.Context, id string) (*ConferenceHotel, error)
}
