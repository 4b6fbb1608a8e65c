package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/footynet/footynet/internal/domain/team"
	"github.com/footynet/footynet/internal/infrastructure/repository/memory"
)

type recordingExpirer struct {
	mu      sync.Mutex
	teamIDs []string
	err     error
}

func (e *recordingExpirer) ExpireStaleMatches(_ context.Context, teamID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.teamIDs = append(e.teamIDs, teamID)
	return e.err
}

func seededTeamRepo(t *testing.T, n int) *memory.TeamRepository {
	t.Helper()

	repo := memory.NewTeamRepository()
	for i := 0; i < n; i++ {
		item := team.Team{
			ID:        fmt.Sprintf("team-%d", i),
			Name:      fmt.Sprintf("Team %d", i),
			CaptainID: fmt.Sprintf("user-%d", i),
			CreatedAt: time.Now(),
		}
		if err := repo.Create(context.Background(), item); err != nil {
			t.Fatalf("seed team: %v", err)
		}
	}
	return repo
}

func TestSweeper_SweepVisitsEveryTeam(t *testing.T) {
	t.Parallel()

	repo := seededTeamRepo(t, 5)
	expirer := &recordingExpirer{}

	sweeper, err := NewSweeper(repo, expirer, time.Minute, 2, slog.Default())
	if err != nil {
		t.Fatalf("new sweeper: %v", err)
	}

	sweeper.sweep(context.Background())

	sort.Strings(expirer.teamIDs)
	if len(expirer.teamIDs) != 5 {
		t.Fatalf("expected 5 teams swept, got %d", len(expirer.teamIDs))
	}
	for i, teamID := range expirer.teamIDs {
		if want := fmt.Sprintf("team-%d", i); teamID != want {
			t.Fatalf("expected %s at position %d, got %s", want, i, teamID)
		}
	}
}

func TestSweeper_ExpirerFailureDoesNotAbortSweep(t *testing.T) {
	t.Parallel()

	repo := seededTeamRepo(t, 3)
	expirer := &recordingExpirer{err: fmt.Errorf("storage offline")}

	sweeper, err := NewSweeper(repo, expirer, time.Minute, 1, slog.Default())
	if err != nil {
		t.Fatalf("new sweeper: %v", err)
	}

	sweeper.sweep(context.Background())

	if len(expirer.teamIDs) != 3 {
		t.Fatalf("expected all 3 teams attempted, got %d", len(expirer.teamIDs))
	}
}

func TestNewSweeper_Validation(t *testing.T) {
	t.Parallel()

	repo := memory.NewTeamRepository()
	expirer := &recordingExpirer{}

	if _, err := NewSweeper(nil, expirer, time.Minute, 1, nil); err == nil {
		t.Fatalf("expected error for nil team repository")
	}
	if _, err := NewSweeper(repo, nil, time.Minute, 1, nil); err == nil {
		t.Fatalf("expected error for nil expirer")
	}
	if _, err := NewSweeper(repo, expirer, 0, 1, nil); err == nil {
		t.Fatalf("expected error for zero interval")
	}
}
