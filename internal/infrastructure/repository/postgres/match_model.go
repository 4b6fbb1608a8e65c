package postgres

import (
	"time"

	"github.com/footynet/footynet/internal/domain/match"
)

type matchModel struct {
	ID         string    `db:"id"`
	HomeTeamID string    `db:"home_team_id"`
	AwayTeamID string    `db:"away_team_id"`
	KickoffAt  time.Time `db:"kickoff_at"`
	VenueID    *string   `db:"venue_id"`
	HomeGoals  *int      `db:"home_goals"`
	AwayGoals  *int      `db:"away_goals"`
	CreatedAt  time.Time `db:"created_at"`
}

func (m matchModel) toDomain() match.Match {
	return match.Match{
		ID:         m.ID,
		HomeTeamID: m.HomeTeamID,
		AwayTeamID: m.AwayTeamID,
		KickoffAt:  m.KickoffAt,
		VenueID:    m.VenueID,
		HomeGoals:  m.HomeGoals,
		AwayGoals:  m.AwayGoals,
		CreatedAt:  m.CreatedAt,
	}
}

func matchModelFromDomain(item match.Match) matchModel {
	return matchModel{
		ID:         item.ID,
		HomeTeamID: item.HomeTeamID,
		AwayTeamID: item.AwayTeamID,
		KickoffAt:  item.KickoffAt,
		VenueID:    item.VenueID,
		HomeGoals:  item.HomeGoals,
		AwayGoals:  item.AwayGoals,
		CreatedAt:  item.CreatedAt,
	}
}
