package user

import "context"

type Repository interface {
	Create(ctx context.Context, item User) error
	GetByID(ctx context.Context, userID string) (User, bool, error)
	GetByUsername(ctx context.Context, username string) (User, bool, error)
	GetByEmail(ctx context.Context, email string) (User, bool, error)
	ListByTeam(ctx context.Context, teamID string) ([]User, error)
	SetTeam(ctx context.Context, userID string, teamID *string) error
}
