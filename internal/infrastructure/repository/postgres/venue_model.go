package postgres

import (
	"time"

	"github.com/footynet/footynet/internal/domain/venue"
)

type venueModel struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Address      string    `db:"address"`
	PricePerHour *float64  `db:"price_per_hour"`
	CreatedAt    time.Time `db:"created_at"`
}

func (m venueModel) toDomain() venue.Venue {
	return venue.Venue{
		ID:           m.ID,
		Name:         m.Name,
		Address:      m.Address,
		PricePerHour: m.PricePerHour,
		CreatedAt:    m.CreatedAt,
	}
}

func venueModelFromDomain(item venue.Venue) venueModel {
	return venueModel{
		ID:           item.ID,
		Name:         item.Name,
		Address:      item.Address,
		PricePerHour: item.PricePerHour,
		CreatedAt:    item.CreatedAt,
	}
}
