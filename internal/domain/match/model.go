package match

import "time"

// Match pairs two distinct teams at a kickoff instant. Home/away ordering is
// bookkeeping only and carries no ranking meaning. VenueID is nil until a
// pitch is booked. A match is deleted once its result is recorded or once its
// kickoff passes unscored.
type Match struct {
	ID         string
	HomeTeamID string
	AwayTeamID string
	KickoffAt  time.Time
	VenueID    *string
	HomeGoals  *int
	AwayGoals  *int
	CreatedAt  time.Time
}

// References reports whether the match involves the given team.
func (m Match) References(teamID string) bool {
	return m.HomeTeamID == teamID || m.AwayTeamID == teamID
}
