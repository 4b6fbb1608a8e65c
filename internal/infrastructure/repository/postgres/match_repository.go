package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/footynet/footynet/internal/domain/match"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) error {
	const query = `INSERT INTO matches (id, home_team_id, away_team_id, kickoff_at, venue_id, home_goals, away_goals, created_at)
VALUES (:id, :home_team_id, :away_team_id, :kickoff_at, :venue_id, :home_goals, :away_goals, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, matchModelFromDomain(item)); err != nil {
		return fmt.Errorf("insert match: %w", err)
	}
	return nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	const query = `SELECT id, home_team_id, away_team_id, kickoff_at, venue_id, home_goals, away_goals, created_at
FROM matches WHERE id = $1`

	var row matchModel
	if err := r.db.GetContext(ctx, &row, query, matchID); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *MatchRepository) ListByTeam(ctx context.Context, teamID string) ([]match.Match, error) {
	const query = `SELECT id, home_team_id, away_team_id, kickoff_at, venue_id, home_goals, away_goals, created_at
FROM matches
WHERE home_team_id = $1 OR away_team_id = $1
ORDER BY kickoff_at, id`

	var rows []matchModel
	if err := r.db.SelectContext(ctx, &rows, query, teamID); err != nil {
		return nil, fmt.Errorf("list matches by team: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchRepository) SetVenue(ctx context.Context, matchID string, venueID *string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE matches SET venue_id = $1 WHERE id = $2`, venueID, matchID)
	if err != nil {
		return fmt.Errorf("set match venue: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set match venue rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("match %s does not exist", matchID)
	}
	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, matchID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM matches WHERE id = $1`, matchID)
	if err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete match rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("match %s does not exist", matchID)
	}
	return nil
}
