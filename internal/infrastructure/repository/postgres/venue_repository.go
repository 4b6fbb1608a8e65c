package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/footynet/footynet/internal/domain/venue"
)

type VenueRepository struct {
	db *sqlx.DB
}

func NewVenueRepository(db *sqlx.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

func (r *VenueRepository) Create(ctx context.Context, item venue.Venue) error {
	const query = `INSERT INTO venues (id, name, address, price_per_hour, created_at)
VALUES (:id, :name, :address, :price_per_hour, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, venueModelFromDomain(item)); err != nil {
		return fmt.Errorf("insert venue: %w", err)
	}
	return nil
}

func (r *VenueRepository) GetByID(ctx context.Context, venueID string) (venue.Venue, bool, error) {
	const query = `SELECT id, name, address, price_per_hour, created_at FROM venues WHERE id = $1`

	var row venueModel
	if err := r.db.GetContext(ctx, &row, query, venueID); err != nil {
		if isNotFound(err) {
			return venue.Venue{}, false, nil
		}
		return venue.Venue{}, false, fmt.Errorf("get venue: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *VenueRepository) Delete(ctx context.Context, venueID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM venues WHERE id = $1`, venueID); err != nil {
		return fmt.Errorf("delete venue: %w", err)
	}
	return nil
}
