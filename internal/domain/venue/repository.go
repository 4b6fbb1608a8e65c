package venue

import "context"

type Repository interface {
	Create(ctx context.Context, item Venue) error
	GetByID(ctx context.Context, venueID string) (Venue, bool, error)
	Delete(ctx context.Context, venueID string) error
}
