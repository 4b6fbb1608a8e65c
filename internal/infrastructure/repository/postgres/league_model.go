package postgres

import (
	"time"

	"github.com/footynet/footynet/internal/domain/league"
)

type leagueModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

func (m leagueModel) toDomain(teamIDs []string) league.League {
	return league.League{
		ID:        m.ID,
		Name:      m.Name,
		TeamIDs:   teamIDs,
		CreatedAt: m.CreatedAt,
	}
}
