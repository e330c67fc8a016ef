package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"roomblock/internal/domain"
)

type conferenceHotelRepository struct {
	DB *sql.DB
}

func NewConferenceHotelRepository(db *sql.DB) domain.ConferenceHotelRepository {
	return &conferenceHotelRepository{
		DB: db,
	}
}

const conferenceHotelColumns = `
	ch.id, ch.conference_id, ch.hotel_id,
	h.name, h.long_name, h.address, h.city, h.state,
	ch.contact_name, ch.contact_email,
	ch.has_bus_parking, ch.has_transit_to_venue, ch.requires_credit_card, ch.priority,
	ch.tax_rate_percentage, ch.tax_per_room_night,
	ch.created_at, ch.updated_at
`

func scanConferenceHotel(row interface{ Scan(...any) error }) (*domain.ConferenceHotel, error) {
	ch := &domain.ConferenceHotel{}
	var longName, address, city, state, contactName, contactEmail sql.NullString
	var taxPerRoomNight sql.NullFloat64
	err := row.Scan(
		&ch.ID, &ch.ConferenceID, &ch.HotelID,
		&ch.HotelName, &longName, &address, &city, &state,
		&contactName, &contactEmail,
		&ch.HasBusParking, &ch.HasTransitToVenue, &ch.RequiresCreditCard, &ch.Priority,
		&ch.TaxRatePercentage, &taxPerRoomNight,
		&ch.CreatedAt, &ch.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	ch.HotelLongName = longName.String
	ch.Address = address.String
	ch.City = city.String
	ch.State = state.String
	ch.ContactName = contactName.String
	ch.ContactEmail = contactEmail.String
	if taxPerRoomNight.Valid {
		ch.TaxPerRoomNight = taxPerRoomNight.Float64
	}
	return ch, nil
}

func (r *conferenceHotelRepository) ListByConference(ctx context.Context, conferenceID string, filters domain.HotelFilters) ([]*domain.ConferenceHotel, error) {
	whereClauses := []string{"ch.conference_id = $1"}
	args := []interface{}{conferenceID}
	n := 2
	if filters.HasBusParking != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("ch.has_bus_parking = $%d", n))
		args = append(args, *filters.HasBusParking)
		n++
	}
	if filters.HasTransitToVenue != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("ch.has_transit_to_venue = $%d", n))
		args = append(args, *filters.HasTransitToVenue)
		n++
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM conference_hotels ch
		JOIN hotels h ON ch.hotel_id = h.id
		WHERE %s
		ORDER BY ch.priority
	`, conferenceHotelColumns, strings.Join(whereClauses, " AND "))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	hotels := make([]*domain.ConferenceHotel, 0)
	for rows.Next() {
		ch, err := scanConferenceHotel(rows)
		if err != nil {
			return nil, err
		}
		hotels = append(hotels, ch)
	}
	return hotels, rows.Err()
}

func (r *conferenceHotelRepository) GetByID(ctx context.Context, id string) (*domain.ConferenceHotel, error) {
	query := `
		SELECT ` + conferenceHotelColumns + `
		FROM conference_hotels ch
		JOIN hotels h ON ch.hotel_id = h.id
		WHERE ch.id = $1
	`
	ch, err := scanConferenceHotel(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return ch, nil
}
