package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/footynet/footynet/internal/domain/league"
	"github.com/footynet/footynet/internal/domain/match"
	"github.com/footynet/footynet/internal/domain/standing"
	"github.com/footynet/footynet/internal/domain/team"
	idgen "github.com/footynet/footynet/internal/platform/id"
)

type LeagueService struct {
	leagueRepo   league.Repository
	teamRepo     team.Repository
	matchRepo    match.Repository
	standingRepo standing.Repository
	standingSvc  *StandingService
	idGen        idgen.Generator
	now          func() time.Time
}

func NewLeagueService(
	leagueRepo league.Repository,
	teamRepo team.Repository,
	matchRepo match.Repository,
	standingRepo standing.Repository,
	standingSvc *StandingService,
	idGen idgen.Generator,
) *LeagueService {
	return &LeagueService{
		leagueRepo:   leagueRepo,
		teamRepo:     teamRepo,
		matchRepo:    matchRepo,
		standingRepo: standingRepo,
		standingSvc:  standingSvc,
		idGen:        idGen,
		now:          time.Now,
	}
}

func (s *LeagueService) CreateLeague(ctx context.Context, name string) (league.League, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return league.League{}, fmt.Errorf("%w: league name is required", ErrInvalidInput)
	}

	leagueID, err := s.idGen.NewID()
	if err != nil {
		return league.League{}, fmt.Errorf("generate league id: %w", err)
	}

	item := league.League{
		ID:        leagueID,
		Name:      name,
		CreatedAt: s.now().UTC(),
	}
	if err := s.leagueRepo.Create(ctx, item); err != nil {
		return league.League{}, fmt.Errorf("create league: %w", err)
	}

	return item, nil
}

// JoinLeague adds a team and creates its zeroed standings row. Only the
// team's captain may enter it into a league.
func (s *LeagueService) JoinLeague(ctx context.Context, leagueID, teamID, actorUserID string) error {
	item, err := s.GetLeague(ctx, leagueID)
	if err != nil {
		return err
	}

	teamItem, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	if teamItem.CaptainID != actorUserID {
		return fmt.Errorf("%w: only the team captain may enter a league", ErrUnauthorized)
	}

	if item.HasTeam(teamID) {
		return fmt.Errorf("%w: team already competes in this league", ErrConflict)
	}

	// The standings row goes in first: if the join stops between the two
	// writes, an orphan row is reused on retry, while the reverse order
	// would leave a member team whose results cannot be recorded.
	if _, rowExists, err := s.standingRepo.GetByLeagueAndTeam(ctx, leagueID, teamID); err != nil {
		return fmt.Errorf("get standings row: %w", err)
	} else if !rowExists {
		if err := s.standingRepo.Create(ctx, standing.NewRow(leagueID, teamID)); err != nil {
			return fmt.Errorf("create standings row: %w", err)
		}
	}
	if err := s.leagueRepo.AddTeam(ctx, leagueID, teamID); err != nil {
		return fmt.Errorf("add team to league: %w", err)
	}

	return nil
}

func (s *LeagueService) GetLeague(ctx context.Context, leagueID string) (league.League, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return league.League{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	item, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league by id: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	return item, nil
}

func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.League, error) {
	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	return leagues, nil
}

func (s *LeagueService) GetStandings(ctx context.Context, leagueID string) ([]standing.Standing, error) {
	if _, err := s.GetLeague(ctx, leagueID); err != nil {
		return nil, err
	}
	return s.standingSvc.Table(ctx, leagueID)
}

// GetSchedule returns the league's upcoming fixtures: matches whose home and
// away teams are both members and whose kickoff has not passed, ordered by
// kickoff time.
func (s *LeagueService) GetSchedule(ctx context.Context, leagueID string) ([]match.Match, error) {
	item, err := s.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	seen := make(map[string]struct{})
	schedule := make([]match.Match, 0)
	for _, teamID := range item.TeamIDs {
		matches, err := s.matchRepo.ListByTeam(ctx, teamID)
		if err != nil {
			return nil, fmt.Errorf("list matches by team: %w", err)
		}
		for _, m := range matches {
			if _, dup := seen[m.ID]; dup {
				continue
			}
			if !item.HasTeam(m.HomeTeamID) || !item.HasTeam(m.AwayTeamID) {
				continue
			}
			if !m.KickoffAt.After(now) {
				continue
			}
			seen[m.ID] = struct{}{}
			schedule = append(schedule, m)
		}
	}

	sort.Slice(schedule, func(i, j int) bool {
		return schedule[i].KickoffAt.Before(schedule[j].KickoffAt)
	})
	return schedule, nil
}
