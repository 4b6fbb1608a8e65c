package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/footynet/footynet/internal/domain/league"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) Create(ctx context.Context, item league.League) error {
	const query = `INSERT INTO leagues (id, name, created_at) VALUES ($1, $2, $3)`

	if _, err := r.db.ExecContext(ctx, query, item.ID, item.Name, item.CreatedAt); err != nil {
		return fmt.Errorf("insert league: %w", err)
	}
	return nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	var row leagueModel
	if err := r.db.GetContext(ctx, &row, `SELECT id, name, created_at FROM leagues WHERE id = $1`, leagueID); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league: %w", err)
	}

	teamIDs, err := r.listTeamIDs(ctx, leagueID)
	if err != nil {
		return league.League{}, false, err
	}
	return row.toDomain(teamIDs), true, nil
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	var rows []leagueModel
	if err := r.db.SelectContext(ctx, &rows, `SELECT id, name, created_at FROM leagues ORDER BY created_at, id`); err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		teamIDs, err := r.listTeamIDs(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, row.toDomain(teamIDs))
	}
	return out, nil
}

func (r *LeagueRepository) AddTeam(ctx context.Context, leagueID, teamID string) error {
	const query = `INSERT INTO league_teams (league_id, team_id, joined_at) VALUES ($1, $2, NOW())`

	if _, err := r.db.ExecContext(ctx, query, leagueID, teamID); err != nil {
		return fmt.Errorf("add team to league: %w", err)
	}
	return nil
}

// FindByTeams returns leagues that contain every one of the given teams,
// oldest first.
func (r *LeagueRepository) FindByTeams(ctx context.Context, teamIDs ...string) ([]league.League, error) {
	if len(teamIDs) == 0 {
		return nil, nil
	}

	const query = `SELECT l.id, l.name, l.created_at
FROM leagues l
JOIN league_teams lt ON lt.league_id = l.id
WHERE lt.team_id = ANY($1)
GROUP BY l.id, l.name, l.created_at
HAVING COUNT(DISTINCT lt.team_id) = $2
ORDER BY l.created_at, l.id`

	var rows []leagueModel
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(teamIDs), len(teamIDs)); err != nil {
		return nil, fmt.Errorf("find leagues by teams: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		memberIDs, err := r.listTeamIDs(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, row.toDomain(memberIDs))
	}
	return out, nil
}

func (r *LeagueRepository) listTeamIDs(ctx context.Context, leagueID string) ([]string, error) {
	var teamIDs []string
	const query = `SELECT team_id FROM league_teams WHERE league_id = $1 ORDER BY joined_at, team_id`
	if err := r.db.SelectContext(ctx, &teamIDs, query, leagueID); err != nil {
		return nil, fmt.Errorf("list league teams: %w", err)
	}
	return teamIDs, nil
}
