package league

import "time"

// League is a competition whose member teams accumulate standings rows.
type League struct {
	ID        string
	Name      string
	TeamIDs   []string
	CreatedAt time.Time
}

// HasTeam reports membership of a single team.
func (l League) HasTeam(teamID string) bool {
	for _, id := range l.TeamIDs {
		if id == teamID {
			return true
		}
	}
	return false
}
