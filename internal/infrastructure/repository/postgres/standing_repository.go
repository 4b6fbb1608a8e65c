package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/footynet/footynet/internal/domain/standing"
)

type StandingRepository struct {
	db *sqlx.DB
}

func NewStandingRepository(db *sqlx.DB) *StandingRepository {
	return &StandingRepository{db: db}
}

func (r *StandingRepository) Create(ctx context.Context, row standing.Standing) error {
	const query = `INSERT INTO standings (league_id, team_id, played, won, drawn, lost, goals_for, goals_against, goal_difference, points)
VALUES (:league_id, :team_id, :played, :won, :drawn, :lost, :goals_for, :goals_against, :goal_difference, :points)`

	if _, err := r.db.NamedExecContext(ctx, query, standingModelFromDomain(row)); err != nil {
		return fmt.Errorf("insert standings row: %w", err)
	}
	return nil
}

func (r *StandingRepository) GetByLeagueAndTeam(ctx context.Context, leagueID, teamID string) (standing.Standing, bool, error) {
	const query = `SELECT league_id, team_id, played, won, drawn, lost, goals_for, goals_against, goal_difference, points
FROM standings WHERE league_id = $1 AND team_id = $2`

	var row standingModel
	if err := r.db.GetContext(ctx, &row, query, leagueID, teamID); err != nil {
		if isNotFound(err) {
			return standing.Standing{}, false, nil
		}
		return standing.Standing{}, false, fmt.Errorf("get standings row: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *StandingRepository) ListByLeague(ctx context.Context, leagueID string) ([]standing.Standing, error) {
	const query = `SELECT league_id, team_id, played, won, drawn, lost, goals_for, goals_against, goal_difference, points
FROM standings WHERE league_id = $1`

	var rows []standingModel
	if err := r.db.SelectContext(ctx, &rows, query, leagueID); err != nil {
		return nil, fmt.Errorf("list standings by league: %w", err)
	}

	out := make([]standing.Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// UpdatePair writes both rows of a scored match in one transaction so a
// reader never observes a half-applied result.
func (r *StandingRepository) UpdatePair(ctx context.Context, a, b standing.Standing) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx update standings pair: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, row := range []standing.Standing{a, b} {
		if err := updateStandingTx(ctx, tx, row); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update standings pair tx: %w", err)
	}
	return nil
}

func updateStandingTx(ctx context.Context, tx *sqlx.Tx, row standing.Standing) error {
	const query = `UPDATE standings
SET played = :played,
    won = :won,
    drawn = :drawn,
    lost = :lost,
    goals_for = :goals_for,
    goals_against = :goals_against,
    goal_difference = :goal_difference,
    points = :points
WHERE league_id = :league_id AND team_id = :team_id`

	result, err := tx.NamedExecContext(ctx, query, standingModelFromDomain(row))
	if err != nil {
		return fmt.Errorf("update standings row team=%s league=%s: %w", row.TeamID, row.LeagueID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update standings row rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("standings row for team %s in league %s does not exist", row.TeamID, row.LeagueID)
	}
	return nil
}
