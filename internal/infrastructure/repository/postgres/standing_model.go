package postgres

import "github.com/footynet/footynet/internal/domain/standing"

type standingModel struct {
	LeagueID       string `db:"league_id"`
	TeamID         string `db:"team_id"`
	Played         int    `db:"played"`
	Won            int    `db:"won"`
	Drawn          int    `db:"drawn"`
	Lost           int    `db:"lost"`
	GoalsFor       int    `db:"goals_for"`
	GoalsAgainst   int    `db:"goals_against"`
	GoalDifference int    `db:"goal_difference"`
	Points         int    `db:"points"`
}

func (m standingModel) toDomain() standing.Standing {
	return standing.Standing{
		LeagueID:       m.LeagueID,
		TeamID:         m.TeamID,
		Played:         m.Played,
		Won:            m.Won,
		Drawn:          m.Drawn,
		Lost:           m.Lost,
		GoalsFor:       m.GoalsFor,
		GoalsAgainst:   m.GoalsAgainst,
		GoalDifference: m.GoalDifference,
		Points:         m.Points,
	}
}

func standingModelFromDomain(row standing.Standing) standingModel {
	return standingModel{
		LeagueID:       row.LeagueID,
		TeamID:         row.TeamID,
		Played:         row.Played,
		Won:            row.Won,
		Drawn:          row.Drawn,
		Lost:           row.Lost,
		GoalsFor:       row.GoalsFor,
		GoalsAgainst:   row.GoalsAgainst,
		GoalDifference: row.GoalDifference,
		Points:         row.Points,
	}
}
