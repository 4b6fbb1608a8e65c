package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/panjf2000/ants/v2"

	"github.com/footynet/footynet/internal/domain/team"
)

// MatchExpirer removes matches whose kickoff has already passed.
type MatchExpirer interface {
	ExpireStaleMatches(ctx context.Context, teamID string) error
}

// Sweeper periodically expires stale matches for every team. Reads already
// sweep lazily, so the job only bounds how long an expired match can linger
// when nobody is looking at it.
type Sweeper struct {
	teams    team.Repository
	expirer  MatchExpirer
	interval time.Duration
	workers  int
	logger   *slog.Logger

	scheduler gocron.Scheduler
}

func NewSweeper(teams team.Repository, expirer MatchExpirer, interval time.Duration, workers int, logger *slog.Logger) (*Sweeper, error) {
	if teams == nil || expirer == nil {
		return nil, fmt.Errorf("sweeper requires a team repository and a match expirer")
	}
	if interval <= 0 {
		return nil, fmt.Errorf("sweep interval must be > 0")
	}
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Sweeper{
		teams:    teams,
		expirer:  expirer,
		interval: interval,
		workers:  workers,
		logger:   logger,
	}, nil
}

func (s *Sweeper) Start() error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), s.interval)
			defer cancel()
			s.sweep(ctx)
		}),
	)
	if err != nil {
		return fmt.Errorf("register sweep job: %w", err)
	}

	scheduler.Start()
	s.scheduler = scheduler
	s.logger.Info("match sweeper started", "interval", s.interval, "workers", s.workers)

	return nil
}

func (s *Sweeper) Stop() error {
	if s.scheduler == nil {
		return nil
	}
	return s.scheduler.Shutdown()
}

func (s *Sweeper) sweep(ctx context.Context) {
	teams, err := s.teams.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "sweep: list teams", "error", err)
		return
	}
	if len(teams) == 0 {
		return
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		s.logger.ErrorContext(ctx, "sweep: create worker pool", "error", err)
		return
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, item := range teams {
		teamID := item.ID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			if err := s.expirer.ExpireStaleMatches(ctx, teamID); err != nil {
				s.logger.ErrorContext(ctx, "sweep: expire stale matches", "team_id", teamID, "error", err)
			}
		}); err != nil {
			workers.Done()
			s.logger.ErrorContext(ctx, "sweep: submit task", "team_id", teamID, "error", err)
		}
	}
	workers.Wait()
}
