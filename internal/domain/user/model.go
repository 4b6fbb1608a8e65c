package user

import "time"

// User is a registered account. TeamID is nil until the user joins a team;
// a user belongs to at most one team at a time.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	TeamID       *string
	CreatedAt    time.Time
}

// Principal identifies the acting user of an authenticated request.
type Principal struct {
	UserID   string
	Username string
}
