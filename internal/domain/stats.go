package domain

import "context"

// ConferenceHotelStats aggregates booking volume for one hotel offering.
// swagger:model ConferenceHotelStats
type ConferenceHotelStats struct {
	ConferenceHotelID string `json:"conferenceHotelId"`
	ConferenceName    string `json:"conferenceName"`
	HotelName         string `json:"hotelName"`
	OrderCount        int    `json:"orderCount"`
	RoomCount         int    `json:"roomCount"`
	OccupantCount     int    `json:"occupantCount"`
}

// StatsRepository defines aggregate queries for the admin dashboard.
type StatsRepository interface {
	ConferenceStats(ctx context.Context) ([]*ConferenceHotelStats, error)
}

// StatsService exposes admin statistics.
type StatsService interface {
	ConferenceStats(ctx context.Context) ([]*ConferenceHotelStats, error)
}
