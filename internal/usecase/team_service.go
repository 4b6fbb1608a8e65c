package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/footynet/footynet/internal/domain/team"
	"github.com/footynet/footynet/internal/domain/user"
	idgen "github.com/footynet/footynet/internal/platform/id"
)

// TeamService owns team membership. The single-team-per-user rule is
// enforced here and nowhere else.
type TeamService struct {
	teamRepo team.Repository
	userRepo user.Repository
	idGen    idgen.Generator
	now      func() time.Time
}

func NewTeamService(teamRepo team.Repository, userRepo user.Repository, idGen idgen.Generator) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		userRepo: userRepo,
		idGen:    idGen,
		now:      time.Now,
	}
}

func (s *TeamService) CreateTeam(ctx context.Context, captainUserID, name string) (team.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return team.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	captain, err := s.getUser(ctx, captainUserID)
	if err != nil {
		return team.Team{}, err
	}
	if captain.TeamID != nil {
		return team.Team{}, fmt.Errorf("%w: user already belongs to a team", ErrConflict)
	}

	if _, exists, err := s.teamRepo.GetByName(ctx, name); err != nil {
		return team.Team{}, fmt.Errorf("get team by name: %w", err)
	} else if exists {
		return team.Team{}, fmt.Errorf("%w: team name %q is taken", ErrConflict, name)
	}

	teamID, err := s.idGen.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	item := team.Team{
		ID:        teamID,
		Name:      name,
		CaptainID: captain.ID,
		CreatedAt: s.now().UTC(),
	}
	if err := s.teamRepo.Create(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}
	if err := s.userRepo.SetTeam(ctx, captain.ID, &item.ID); err != nil {
		return team.Team{}, fmt.Errorf("assign captain to team: %w", err)
	}

	return item, nil
}

func (s *TeamService) JoinTeam(ctx context.Context, userID, teamID string) error {
	joiner, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}
	if joiner.TeamID != nil {
		return fmt.Errorf("%w: user already belongs to a team", ErrConflict)
	}

	if _, err := s.GetTeam(ctx, teamID); err != nil {
		return err
	}

	if err := s.userRepo.SetTeam(ctx, joiner.ID, &teamID); err != nil {
		return fmt.Errorf("join team: %w", err)
	}
	return nil
}

func (s *TeamService) LeaveTeam(ctx context.Context, userID string) error {
	leaver, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}
	if leaver.TeamID == nil {
		return fmt.Errorf("%w: user is not on a team", ErrConflict)
	}

	item, err := s.GetTeam(ctx, *leaver.TeamID)
	if err != nil {
		return err
	}
	if item.CaptainID == leaver.ID {
		members, err := s.userRepo.ListByTeam(ctx, item.ID)
		if err != nil {
			return fmt.Errorf("list team members: %w", err)
		}
		if len(members) > 1 {
			return fmt.Errorf("%w: captain cannot leave while the roster has other members", ErrConflict)
		}
	}

	if err := s.userRepo.SetTeam(ctx, leaver.ID, nil); err != nil {
		return fmt.Errorf("leave team: %w", err)
	}
	return nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID string) (team.Team, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return item, nil
}

func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

func (s *TeamService) ListMembers(ctx context.Context, teamID string) ([]user.User, error) {
	if _, err := s.GetTeam(ctx, teamID); err != nil {
		return nil, err
	}

	members, err := s.userRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	return members, nil
}

func (s *TeamService) getUser(ctx context.Context, userID string) (user.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return user.User{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	item, exists, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, fmt.Errorf("get user by id: %w", err)
	}
	if !exists {
		return user.User{}, fmt.Errorf("%w: user=%s", ErrNotFound, userID)
	}

	return item, nil
}
