package postgres

import (
	"time"

	"github.com/footynet/footynet/internal/domain/user"
)

type userModel struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	TeamID       *string   `db:"team_id"`
	CreatedAt    time.Time `db:"created_at"`
}

func (m userModel) toDomain() user.User {
	return user.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		TeamID:       m.TeamID,
		CreatedAt:    m.CreatedAt,
	}
}

func userModelFromDomain(item user.User) userModel {
	return userModel{
		ID:           item.ID,
		Username:     item.Username,
		Email:        item.Email,
		PasswordHash: item.PasswordHash,
		TeamID:       item.TeamID,
		CreatedAt:    item.CreatedAt,
	}
}
