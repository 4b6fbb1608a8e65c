package standing

// Standing is one team's aggregate record within a single league.
// Invariants maintained by ApplyResult:
//
//	GoalDifference == GoalsFor - GoalsAgainst
//	Points == 3*Won + Drawn
//	Played == Won + Drawn + Lost
type Standing struct {
	LeagueID       string
	TeamID         string
	Position       int
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
}

// NewRow returns the zeroed standings row created when a team joins a league.
func NewRow(leagueID, teamID string) Standing {
	return Standing{LeagueID: leagueID, TeamID: teamID}
}
