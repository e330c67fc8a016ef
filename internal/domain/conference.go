package domain

import (
	"context"
	"time"
)

// Conference is the event for which hotel room blocks are being reserved.
// Read-only reference data for the registration flow.
// swagger:model Conference
type Conference struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	LongName             string    `json:"longName"`
	Passcode             string    `json:"passcode"`
	DefaultArrivalDate   string    `json:"defaultArrivalDate"`
	EarliestArrivalDate  string    `json:"earliestArrivalDate"`
	DefaultDepartureDate string    `json:"defaultDepartureDate"`
	LogoURL              string    `json:"logoUrl,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// ConferenceRepository defines storage operations for conferences.
type ConferenceRepository interface {
	GetByPasscode(ctx context.Context, passcode string) (*Conference, error)
	GetByID(ctx context.Context, id string) (*Conference, error)
	List(ctx context.Context) ([]*Conference, error)
}

// ConferenceService defines read-only conference lookups.
type ConferenceService interface {
	// GetByPasscode resolves a registration passcode to its conference.
	// The passcode is canonicalized before lookup.
	GetByPasscode(ctx context.Context, passcode string) (*Conference, error)
	GetByID(ctx context.Context, id string) (*Conference, error)
	List(ctx context.Context) ([]*Conference, error)
}
