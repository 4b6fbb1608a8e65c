package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/footynet/footynet/internal/domain/user"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, item user.User) error {
	const query = `INSERT INTO users (id, username, email, password_hash, team_id, created_at)
VALUES (:id, :username, :email, :password_hash, :team_id, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, userModelFromDomain(item)); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (user.User, bool, error) {
	return r.getOne(ctx, `SELECT id, username, email, password_hash, team_id, created_at FROM users WHERE id = $1`, userID)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (user.User, bool, error) {
	return r.getOne(ctx, `SELECT id, username, email, password_hash, team_id, created_at FROM users WHERE username = $1`, username)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, bool, error) {
	return r.getOne(ctx, `SELECT id, username, email, password_hash, team_id, created_at FROM users WHERE email = $1`, email)
}

func (r *UserRepository) ListByTeam(ctx context.Context, teamID string) ([]user.User, error) {
	const query = `SELECT id, username, email, password_hash, team_id, created_at
FROM users
WHERE team_id = $1
ORDER BY created_at, id`

	var rows []userModel
	if err := r.db.SelectContext(ctx, &rows, query, teamID); err != nil {
		return nil, fmt.Errorf("list users by team: %w", err)
	}

	out := make([]user.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *UserRepository) SetTeam(ctx context.Context, userID string, teamID *string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE users SET team_id = $1 WHERE id = $2`, teamID, userID)
	if err != nil {
		return fmt.Errorf("set user team: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set user team rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("user %s does not exist", userID)
	}
	return nil
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (user.User, bool, error) {
	var row userModel
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("get user: %w", err)
	}
	return row.toDomain(), true, nil
}
