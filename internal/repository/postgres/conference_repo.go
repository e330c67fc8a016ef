package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"roomblock/internal/domain"
)

type conferenceRepository struct {
	DB *sql.DB
}

func NewConferenceRepository(db *sql.DB) domain.ConferenceRepository {
	return &conferenceRepository{
		DB: db,
	}
}

const conferenceColumns = `
	id, name, long_name, passcode, default_arrival_date, earliest_arrival_date,
	default_departure_date, logo_url, created_at, updated_at
`

func scanConference(row interface{ Scan(...any) error }) (*domain.Conference, error) {
	c := &domain.Conference{}
	var logoNull sql.NullString
	err := row.Scan(
		&c.ID, &c.Name, &c.LongName, &c.Passcode, &c.DefaultArrivalDate,
		&c.EarliestArrivalDate, &c.DefaultDepartureDate, &logoNull,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if logoNull.Valid {
		c.LogoURL = logoNull.String
	}
	return c, nil
}

func (r *conferenceRepository) GetByPasscode(ctx context.Context, passcode string) (*domain.Conference, error) {
	code := strings.ToLower(strings.TrimSpace(passcode))
	query := `SELECT ` + conferenceColumns + ` FROM conferences WHERE passcode = $1`
	c, err := scanConference(r.DB.QueryRowContext(ctx, query, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *conferenceRepository) GetByID(ctx context.Context, id string) (*domain.Conference, error) {
	query := `SELECT ` + conferenceColumns + ` FROM conferences WHERE id = $1`
	c, err := scanConference(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *conferenceRepository) List(ctx context.Context) ([]*domain.Conference, error) {
	query := `SELECT ` + conferenceColumns + ` FROM conferences ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	conferences := make([]*domain.Conference, 0)
	for rows.Next() {
		c, err := scanConference(rows)
		if err != nil {
			return nil, err
		}
		conferences = append(conferences, c)
	}
	return conferences, rows.Err()
}
