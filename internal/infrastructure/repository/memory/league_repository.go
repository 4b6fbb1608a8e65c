package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/footynet/footynet/internal/domain/league"
)

type LeagueRepository struct {
	mu     sync.RWMutex
	items  map[string]league.League
	orders []string
}

func NewLeagueRepository() *LeagueRepository {
	return &LeagueRepository{items: make(map[string]league.League)}
}

func (r *LeagueRepository) Create(_ context.Context, item league.League) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; ok {
		return fmt.Errorf("league %s already exists", item.ID)
	}

	r.items[item.ID] = cloneLeague(item)
	r.orders = append(r.orders, item.ID)
	return nil
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[leagueID]
	if !ok {
		return league.League{}, false, nil
	}

	return cloneLeague(item), true, nil
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, cloneLeague(r.items[id]))
	}

	return out, nil
}

func (r *LeagueRepository) AddTeam(_ context.Context, leagueID, teamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[leagueID]
	if !ok {
		return fmt.Errorf("league %s does not exist", leagueID)
	}
	if item.HasTeam(teamID) {
		return fmt.Errorf("team %s already in league %s", teamID, leagueID)
	}

	item.TeamIDs = append(append([]string(nil), item.TeamIDs...), teamID)
	r.items[leagueID] = item
	return nil
}

func (r *LeagueRepository) FindByTeams(_ context.Context, teamIDs ...string) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []league.League
	for _, id := range r.orders {
		item := r.items[id]
		containsAll := true
		for _, teamID := range teamIDs {
			if !item.HasTeam(teamID) {
				containsAll = false
				break
			}
		}
		if containsAll {
			out = append(out, cloneLeague(item))
		}
	}

	return out, nil
}

func cloneLeague(item league.League) league.League {
	copied := item
	copied.TeamIDs = append([]string(nil), item.TeamIDs...)
	return copied
}
