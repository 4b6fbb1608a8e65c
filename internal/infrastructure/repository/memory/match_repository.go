package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/footynet/footynet/internal/domain/match"
)

type MatchRepository struct {
	mu    sync.RWMutex
	items map[string]match.Match
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{items: make(map[string]match.Match)}
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; ok {
		return fmt.Errorf("match %s already exists", item.ID)
	}

	r.items[item.ID] = cloneMatch(item)
	return nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[matchID]
	if !ok {
		return match.Match{}, false, nil
	}

	return cloneMatch(item), true, nil
}

func (r *MatchRepository) ListByTeam(_ context.Context, teamID string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []match.Match
	for _, item := range r.items {
		if item.References(teamID) {
			out = append(out, cloneMatch(item))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].KickoffAt.Before(out[j].KickoffAt)
	})

	return out, nil
}

func (r *MatchRepository) SetVenue(_ context.Context, matchID string, venueID *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[matchID]
	if !ok {
		return fmt.Errorf("match %s does not exist", matchID)
	}

	if venueID == nil {
		item.VenueID = nil
	} else {
		copied := *venueID
		item.VenueID = &copied
	}
	r.items[matchID] = item
	return nil
}

func (r *MatchRepository) Delete(_ context.Context, matchID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[matchID]; !ok {
		return fmt.Errorf("match %s does not exist", matchID)
	}

	delete(r.items, matchID)
	return nil
}

func cloneMatch(item match.Match) match.Match {
	copied := item
	if item.VenueID != nil {
		venueID := *item.VenueID
		copied.VenueID = &venueID
	}
	if item.HomeGoals != nil {
		goals := *item.HomeGoals
		copied.HomeGoals = &goals
	}
	if item.AwayGoals != nil {
		goals := *item.AwayGoals
		copied.AwayGoals = &goals
	}
	return copied
}
