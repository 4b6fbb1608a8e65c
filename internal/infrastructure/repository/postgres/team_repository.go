package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/footynet/footynet/internal/domain/team"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) error {
	const query = `INSERT INTO teams (id, name, captain_id, created_at)
VALUES (:id, :name, :captain_id, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, teamModelFromDomain(item)); err != nil {
		return fmt.Errorf("insert team: %w", err)
	}
	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	return r.getOne(ctx, `SELECT id, name, captain_id, created_at FROM teams WHERE id = $1`, teamID)
}

func (r *TeamRepository) GetByName(ctx context.Context, name string) (team.Team, bool, error) {
	return r.getOne(ctx, `SELECT id, name, captain_id, created_at FROM teams WHERE name = $1`, name)
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	const query = `SELECT id, name, captain_id, created_at FROM teams ORDER BY created_at, id`

	var rows []teamModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamRepository) getOne(ctx context.Context, query string, arg any) (team.Team, bool, error) {
	var row teamModel
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team: %w", err)
	}
	return row.toDomain(), true, nil
}
