package postgres

import (
	"time"

	"github.com/footynet/footynet/internal/domain/team"
)

type teamModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	CaptainID string    `db:"captain_id"`
	CreatedAt time.Time `db:"created_at"`
}

func (m teamModel) toDomain() team.Team {
	return team.Team{
		ID:        m.ID,
		Name:      m.Name,
		CaptainID: m.CaptainID,
		CreatedAt: m.CreatedAt,
	}
}

func teamModelFromDomain(item team.Team) teamModel {
	return teamModel{
		ID:        item.ID,
		Name:      item.Name,
		CaptainID: item.CaptainID,
		CreatedAt: item.CreatedAt,
	}
}
