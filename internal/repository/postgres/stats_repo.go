package postgres

import (
	"context"
	"database/sql"

	"roomblock/internal/domain"
)

type statsRepository struct {
	DB *sql.DB
}

func NewStatsRepository(db *sql.DB) domain.StatsRepository {
	return &statsRepository{
		DB: db,
	}
}

func (r *statsRepository) ConferenceStats(ctx context.Context) ([]*domain.ConferenceHotelStats, error) {
	query := `
		SELECT ch.id, c.name, h.name,
			COUNT(DISTINCT o.id)  AS order_count,
			COUNT(DISTINCT rm.id) AS room_count,
			COUNT(occ.id)         AS occupant_count
		FROM orders o
		INNER JOIN order_rooms rm ON o.id = rm.order_id
		LEFT JOIN order_room_occupants occ ON rm.id = occ.order_room_id
		LEFT JOIN conference_hotels ch ON o.conference_hotel_id = ch.id
		LEFT JOIN hotels h ON ch.hotel_id = h.id
		LEFT JOIN conferences c ON ch.conference_id = c.id
		GROUP BY ch.id, c.name, h.name
		ORDER BY c.name, h.name
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	stats := make([]*domain.ConferenceHotelStats, 0)
	for rows.Next() {
		s := &domain.ConferenceHotelStats{}
		var chID, confName, hotelName sql.NullString
		if err := rows.Scan(&chID, &confName, &hotelName, &s.OrderCount, &s.RoomCount, &s.OccupantCount); err != nil {
			return nil, err
		}
		// Orders without a hotel selection group under empty identifiers.
		s.ConferenceHotelID = chID.String
		s.ConferenceName = confName.String
		s.HotelName = hotelName.String
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
