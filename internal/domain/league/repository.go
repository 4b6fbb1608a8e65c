package league

import "context"

type Repository interface {
	Create(ctx context.Context, item League) error
	GetByID(ctx context.Context, leagueID string) (League, bool, error)
	List(ctx context.Context) ([]League, error)
	AddTeam(ctx context.Context, leagueID, teamID string) error
	// FindByTeams returns leagues whose member set contains every given team.
	FindByTeams(ctx context.Context, teamIDs ...string) ([]League, error)
}
