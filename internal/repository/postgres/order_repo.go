package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"roomblock/internal/domain"
)

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepository(db *sql.DB) domain.OrderRepository {
	return &orderRepository{
		DB: db,
	}
}

// Submit writes the order header, then its rooms, then each room's occupants,
// inside one transaction. Child rows need the parent's generated id, so the
// insert order is fixed. Any failure rolls the whole submission back.
func (r *orderRepository) Submit(ctx context.Context, o *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	orderQuery := `
		INSERT INTO orders (
			contact_first_name, contact_last_name, contact_email, contact_cell,
			billing_addressee, billing_street1, billing_street2, billing_city,
			billing_state, billing_zip, billing_country,
			requires_bus_parking, requires_transit_to_venue,
			conference_hotel_id, rewards_number, terms_accepted, notes_for_hotel,
			order_status, confirmation, room_count, occupant_count,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, orderQuery,
		o.ContactFirstName, o.ContactLastName, o.ContactEmail, o.ContactCell,
		o.BillingAddressee, o.BillingStreet1, o.BillingStreet2, o.BillingCity,
		o.BillingState, o.BillingZip, o.BillingCountry,
		o.RequiresBusParking, o.RequiresTransitToVenue,
		nullString(o.ConferenceHotelID), o.RewardsNumber, o.TermsAccepted, o.NotesForHotel,
		o.OrderStatus, o.Confirmation, o.RoomCount, o.OccupantCount,
		o.CreatedAt, o.UpdatedAt,
	).Scan(&o.ID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	roomQuery := `
		INSERT INTO order_rooms (order_id, type, arrival_date, departure_date, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	occupantQuery := `
		INSERT INTO order_room_occupants (order_room_id, first_name, last_name, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	for i, room := range o.Rooms {
		room.OrderID = o.ID
		err = tx.QueryRowContext(ctx, roomQuery,
			o.ID, string(room.Type), room.ArrivalDate, room.DepartureDate, i, o.CreatedAt, o.UpdatedAt,
		).Scan(&room.ID)
		if err != nil {
			return fmt.Errorf("insert order room: %w", err)
		}
		for j, occupant := range room.Occupants {
			occupant.OrderRoomID = room.ID
			err = tx.QueryRowContext(ctx, occupantQuery,
				room.ID, occupant.FirstName, occupant.LastName, j, o.CreatedAt, o.UpdatedAt,
			).Scan(&occupant.ID)
			if err != nil {
				return fmt.Errorf("insert order room occupant: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

const orderColumns = `
	id, contact_first_name, contact_last_name, contact_email, contact_cell,
	billing_addressee, billing_street1, billing_street2, billing_city,
	billing_state, billing_zip, billing_country,
	requires_bus_parking, requires_transit_to_venue,
	conference_hotel_id, rewards_number, terms_accepted, notes_for_hotel,
	order_status, confirmation, room_count, occupant_count,
	created_at, updated_at
`

func scanOrder(row interface{ Scan(...any) error }) (*domain.Order, error) {
	o := &domain.Order{}
	var hotelNull sql.NullString
	err := row.Scan(
		&o.ID, &o.ContactFirstName, &o.ContactLastName, &o.ContactEmail, &o.ContactCell,
		&o.BillingAddressee, &o.BillingStreet1, &o.BillingStreet2, &o.BillingCity,
		&o.BillingState, &o.BillingZip, &o.BillingCountry,
		&o.RequiresBusParking, &o.RequiresTransitToVenue,
		&hotelNull, &o.RewardsNumber, &o.TermsAccepted, &o.NotesForHotel,
		&o.OrderStatus, &o.Confirmation, &o.RoomCount, &o.OccupantCount,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if hotelNull.Valid {
		o.ConferenceHotelID = hotelNull.String
	}
	return o, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	o, err := scanOrder(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	roomQuery := `
		SELECT id, order_id, type, arrival_date, departure_date
		FROM order_rooms
		WHERE order_id = $1
		ORDER BY position
	`
	rows, err := r.DB.QueryContext(ctx, roomQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	o.Rooms = make([]*domain.OrderRoom, 0)
	for rows.Next() {
		room := &domain.OrderRoom{}
		var roomType string
		if err := rows.Scan(&room.ID, &room.OrderID, &roomType, &room.ArrivalDate, &room.DepartureDate); err != nil {
			return nil, err
		}
		room.Type = domain.RoomType(roomType)
		o.Rooms = append(o.Rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	occupantQuery := `
		SELECT occ.id, occ.order_room_id, occ.first_name, occ.last_name
		FROM order_room_occupants occ
		JOIN order_rooms r ON occ.order_room_id = r.id
		WHERE r.order_id = $1
		ORDER BY r.position, occ.position
	`
	occRows, err := r.DB.QueryContext(ctx, occupantQuery, id)
	if err != nil {
		return nil, err
	}
	defer occRows.Close()
	roomsByID := make(map[string]*domain.OrderRoom, len(o.Rooms))
	for _, room := range o.Rooms {
		room.Occupants = make([]*domain.OrderRoomOccupant, 0)
		roomsByID[room.ID] = room
	}
	for occRows.Next() {
		occ := &domain.OrderRoomOccupant{}
		if err := occRows.Scan(&occ.ID, &occ.OrderRoomID, &occ.FirstName, &occ.LastName); err != nil {
			return nil, err
		}
		if room, ok := roomsByID[occ.OrderRoomID]; ok {
			room.Occupants = append(room.Occupants, occ)
		}
	}
	return o, occRows.Err()
}

func (r *orderRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Order, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + orderColumns + `
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	orders := make([]*domain.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	return orders, total, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
