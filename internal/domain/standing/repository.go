package standing

import "context"

type Repository interface {
	Create(ctx context.Context, row Standing) error
	GetByLeagueAndTeam(ctx context.Context, leagueID, teamID string) (Standing, bool, error)
	ListByLeague(ctx context.Context, leagueID string) ([]Standing, error)
	// UpdatePair persists both rows of one result as a single atomic write.
	UpdatePair(ctx context.Context, a, b Standing) error
}
