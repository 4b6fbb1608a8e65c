package match

import "context"

type Repository interface {
	Create(ctx context.Context, item Match) error
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	ListByTeam(ctx context.Context, teamID string) ([]Match, error)
	SetVenue(ctx context.Context, matchID string, venueID *string) error
	// Delete removes the match row; the caller owns venue cleanup.
	Delete(ctx context.Context, matchID string) error
}
