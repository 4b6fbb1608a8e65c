package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/footynet/footynet/internal/domain/standing"
)

// StandingService applies final scores to a league table. Mutations for one
// league are serialized behind a per-league mutex so two concurrent results
// cannot interleave their read-modify-write of the same rows.
type StandingService struct {
	standingRepo standing.Repository

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewStandingService(standingRepo standing.Repository) *StandingService {
	return &StandingService{
		standingRepo: standingRepo,
		locks:        make(map[string]*sync.Mutex),
	}
}

// ApplyResult folds one result into both teams' rows and persists them as a
// single write. Missing rows fail fast; rows are never created implicitly.
func (s *StandingService) ApplyResult(ctx context.Context, leagueID, homeTeamID, awayTeamID string, homeGoals, awayGoals int) error {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if homeGoals < 0 || awayGoals < 0 {
		return fmt.Errorf("%w: goals must be non-negative", ErrInvalidInput)
	}

	lock := s.leagueLock(leagueID)
	lock.Lock()
	defer lock.Unlock()

	home, err := s.getRow(ctx, leagueID, homeTeamID)
	if err != nil {
		return err
	}
	away, err := s.getRow(ctx, leagueID, awayTeamID)
	if err != nil {
		return err
	}

	if err := standing.ApplyResult(&home, &away, homeGoals, awayGoals); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.standingRepo.UpdatePair(ctx, home, away); err != nil {
		return fmt.Errorf("persist standings pair: %w", err)
	}

	return nil
}

// Table returns the league's rows in display order with positions assigned.
func (s *StandingService) Table(ctx context.Context, leagueID string) ([]standing.Standing, error) {
	rows, err := s.standingRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list standings: %w", err)
	}

	standing.SortTable(rows)
	return rows, nil
}

func (s *StandingService) getRow(ctx context.Context, leagueID, teamID string) (standing.Standing, error) {
	row, exists, err := s.standingRepo.GetByLeagueAndTeam(ctx, leagueID, teamID)
	if err != nil {
		return standing.Standing{}, fmt.Errorf("get standings row: %w", err)
	}
	if !exists {
		return standing.Standing{}, fmt.Errorf("%w: standings row league=%s team=%s", ErrNotFound, leagueID, teamID)
	}
	return row, nil
}

func (s *StandingService) leagueLock(leagueID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[leagueID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[leagueID] = lock
	}
	return lock
}
