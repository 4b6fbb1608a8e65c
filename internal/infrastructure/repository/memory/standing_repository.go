package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/footynet/footynet/internal/domain/standing"
)

type StandingRepository struct {
	mu    sync.RWMutex
	items map[string]standing.Standing
}

func NewStandingRepository() *StandingRepository {
	return &StandingRepository{items: make(map[string]standing.Standing)}
}

func (r *StandingRepository) Create(_ context.Context, row standing.Standing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := standingKey(row.LeagueID, row.TeamID)
	if _, ok := r.items[key]; ok {
		return fmt.Errorf("standings row for team %s in league %s already exists", row.TeamID, row.LeagueID)
	}

	r.items[key] = row
	return nil
}

func (r *StandingRepository) GetByLeagueAndTeam(_ context.Context, leagueID, teamID string) (standing.Standing, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.items[standingKey(leagueID, teamID)]
	if !ok {
		return standing.Standing{}, false, nil
	}

	return row, true, nil
}

func (r *StandingRepository) ListByLeague(_ context.Context, leagueID string) ([]standing.Standing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []standing.Standing
	for _, row := range r.items {
		if row.LeagueID == leagueID {
			out = append(out, row)
		}
	}

	return out, nil
}

// UpdatePair writes both rows of a scored match under one lock so a reader
// never observes a half-applied result.
func (r *StandingRepository) UpdatePair(_ context.Context, a, b standing.Standing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	keyA := standingKey(a.LeagueID, a.TeamID)
	keyB := standingKey(b.LeagueID, b.TeamID)
	if _, ok := r.items[keyA]; !ok {
		return fmt.Errorf("standings row for team %s in league %s does not exist", a.TeamID, a.LeagueID)
	}
	if _, ok := r.items[keyB]; !ok {
		return fmt.Errorf("standings row for team %s in league %s does not exist", b.TeamID, b.LeagueID)
	}

	r.items[keyA] = a
	r.items[keyB] = b
	return nil
}

func standingKey(leagueID, teamID string) string {
	return leagueID + "::" + teamID
}
