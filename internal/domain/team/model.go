package team

import "time"

// Team is a club of users. The captain is always a roster member; the roster
// itself is derived from user records pointing at this team.
type Team struct {
	ID        string
	Name      string
	CaptainID string
	CreatedAt time.Time
}
