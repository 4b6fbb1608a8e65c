package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/footynet/footynet/internal/domain/league"
	"github.com/footynet/footynet/internal/domain/match"
	"github.com/footynet/footynet/internal/domain/team"
	"github.com/footynet/footynet/internal/domain/user"
	"github.com/footynet/footynet/internal/domain/venue"
	idgen "github.com/footynet/footynet/internal/platform/id"
)

// BookingDetails is the payload handed to the notification relay after a
// venue booking.
type BookingDetails struct {
	MatchID      string
	HomeTeamName string
	AwayTeamName string
	KickoffAt    time.Time
	VenueName    string
	VenueAddress string
}

// Notifier delivers booking confirmations. Delivery failure is never
// escalated to the booking caller.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, recipient string, details BookingDetails) error
}

// MatchService owns the match lifecycle: scheduling, lazy expiry of matches
// whose kickoff has passed, venue booking, and folding submitted results into
// the standings before deleting the match.
type MatchService struct {
	matchRepo   match.Repository
	venueRepo   venue.Repository
	teamRepo    team.Repository
	userRepo    user.Repository
	leagueRepo  league.Repository
	standingSvc *StandingService
	notifier    Notifier
	idGen       idgen.Generator
	logger      *slog.Logger
	now         func() time.Time
}

func NewMatchService(
	matchRepo match.Repository,
	venueRepo venue.Repository,
	teamRepo team.Repository,
	userRepo user.Repository,
	leagueRepo league.Repository,
	standingSvc *StandingService,
	notifier Notifier,
	idGen idgen.Generator,
	logger *slog.Logger,
) *MatchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &MatchService{
		matchRepo:   matchRepo,
		venueRepo:   venueRepo,
		teamRepo:    teamRepo,
		userRepo:    userRepo,
		leagueRepo:  leagueRepo,
		standingSvc: standingSvc,
		notifier:    notifier,
		idGen:       idGen,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *MatchService) ScheduleMatch(ctx context.Context, homeTeamID, awayTeamID string, kickoffAt time.Time) (match.Match, error) {
	homeTeamID = strings.TrimSpace(homeTeamID)
	awayTeamID = strings.TrimSpace(awayTeamID)
	if homeTeamID == "" || awayTeamID == "" {
		return match.Match{}, fmt.Errorf("%w: both team ids are required", ErrInvalidInput)
	}
	if homeTeamID == awayTeamID {
		return match.Match{}, fmt.Errorf("%w: a team cannot play itself", ErrInvalidInput)
	}
	if kickoffAt.IsZero() {
		return match.Match{}, fmt.Errorf("%w: kickoff time is required", ErrInvalidInput)
	}

	for _, teamID := range []string{homeTeamID, awayTeamID} {
		if err := s.requireTeam(ctx, teamID); err != nil {
			return match.Match{}, err
		}
	}

	// Scheduling is a natural touch point for the scheduling team's
	// backlog; the opponent's list is swept when it is next read. The sweep
	// runs before the insert so it can only reach the team's other matches,
	// never the one being created (a past kickoff is valid input).
	if err := s.ExpireStaleMatches(ctx, homeTeamID); err != nil {
		s.logger.WarnContext(ctx, "expire stale matches before scheduling failed", "team_id", homeTeamID, "error", err)
	}

	matchID, err := s.idGen.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	item := match.Match{
		ID:         matchID,
		HomeTeamID: homeTeamID,
		AwayTeamID: awayTeamID,
		KickoffAt:  kickoffAt.UTC(),
		CreatedAt:  s.now().UTC(),
	}
	if err := s.matchRepo.Create(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}

	return item, nil
}

// ExpireStaleMatches deletes every match of the team whose kickoff is at or
// before now, together with its venue. Future matches are untouched. There is
// no background scheduler by default; read paths invoke this lazily.
func (s *MatchService) ExpireStaleMatches(ctx context.Context, teamID string) error {
	matches, err := s.matchRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return fmt.Errorf("list matches by team: %w", err)
	}

	now := s.now()
	for _, item := range matches {
		if item.KickoffAt.After(now) {
			continue
		}
		if err := s.deleteMatch(ctx, item); err != nil {
			return err
		}
		s.logger.InfoContext(ctx, "expired stale match",
			"match_id", item.ID,
			"home_team_id", item.HomeTeamID,
			"away_team_id", item.AwayTeamID,
			"kickoff_at", item.KickoffAt,
		)
	}

	return nil
}

// RecordResult applies a final score to the league both teams share, then
// deletes the match and its venue. Matches are not archived; a second call
// for the same match reports NotFound.
func (s *MatchService) RecordResult(ctx context.Context, matchID string, homeGoals, awayGoals int) error {
	if homeGoals < 0 || awayGoals < 0 {
		return fmt.Errorf("%w: goals must be non-negative", ErrInvalidInput)
	}

	item, err := s.getMatch(ctx, matchID)
	if err != nil {
		return err
	}

	leagues, err := s.leagueRepo.FindByTeams(ctx, item.HomeTeamID, item.AwayTeamID)
	if err != nil {
		return fmt.Errorf("find shared league: %w", err)
	}
	if len(leagues) == 0 {
		return fmt.Errorf("%w: no league contains both teams", ErrConflict)
	}

	if err := s.standingSvc.ApplyResult(ctx, leagues[0].ID, item.HomeTeamID, item.AwayTeamID, homeGoals, awayGoals); err != nil {
		return err
	}

	if err := s.deleteMatch(ctx, item); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "match result recorded",
		"match_id", item.ID,
		"league_id", leagues[0].ID,
		"home_goals", homeGoals,
		"away_goals", awayGoals,
	)
	return nil
}

// BookVenue creates a pitch for the match and attaches it. Rebooking deletes
// the previously attached venue first. Captains of both teams are notified;
// notification failure is logged only.
func (s *MatchService) BookVenue(ctx context.Context, matchID, name, address string, pricePerHour *float64) (venue.Venue, error) {
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)
	if name == "" {
		return venue.Venue{}, fmt.Errorf("%w: venue name is required", ErrInvalidInput)
	}
	if address == "" {
		return venue.Venue{}, fmt.Errorf("%w: venue address is required", ErrInvalidInput)
	}

	item, err := s.getMatch(ctx, matchID)
	if err != nil {
		return venue.Venue{}, err
	}

	venueID, err := s.idGen.NewID()
	if err != nil {
		return venue.Venue{}, fmt.Errorf("generate venue id: %w", err)
	}

	booked := venue.Venue{
		ID:           venueID,
		Name:         name,
		Address:      address,
		PricePerHour: pricePerHour,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.venueRepo.Create(ctx, booked); err != nil {
		return venue.Venue{}, fmt.Errorf("create venue: %w", err)
	}

	previousVenueID := item.VenueID
	if err := s.matchRepo.SetVenue(ctx, item.ID, &booked.ID); err != nil {
		return venue.Venue{}, fmt.Errorf("attach venue to match: %w", err)
	}
	if previousVenueID != nil {
		if err := s.venueRepo.Delete(ctx, *previousVenueID); err != nil {
			s.logger.WarnContext(ctx, "delete replaced venue failed", "venue_id", *previousVenueID, "error", err)
		}
	}

	s.notifyCaptains(ctx, item, booked)

	return booked, nil
}

// ListTeamMatches sweeps the team's stale matches, then returns what remains.
func (s *MatchService) ListTeamMatches(ctx context.Context, teamID string) ([]match.Match, error) {
	if err := s.requireTeam(ctx, teamID); err != nil {
		return nil, err
	}
	if err := s.ExpireStaleMatches(ctx, teamID); err != nil {
		return nil, err
	}

	matches, err := s.matchRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list matches by team: %w", err)
	}
	return matches, nil
}

func (s *MatchService) notifyCaptains(ctx context.Context, item match.Match, booked venue.Venue) {
	if s.notifier == nil {
		return
	}

	details := BookingDetails{
		MatchID:      item.ID,
		KickoffAt:    item.KickoffAt,
		VenueName:    booked.Name,
		VenueAddress: booked.Address,
	}

	for _, teamID := range []string{item.HomeTeamID, item.AwayTeamID} {
		teamItem, exists, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil || !exists {
			s.logger.WarnContext(ctx, "resolve team for booking confirmation failed", "team_id", teamID, "error", err)
			continue
		}
		if teamID == item.HomeTeamID {
			details.HomeTeamName = teamItem.Name
		} else {
			details.AwayTeamName = teamItem.Name
		}
	}

	for _, teamID := range []string{item.HomeTeamID, item.AwayTeamID} {
		teamItem, exists, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil || !exists {
			continue
		}
		captain, exists, err := s.userRepo.GetByID(ctx, teamItem.CaptainID)
		if err != nil || !exists {
			s.logger.WarnContext(ctx, "resolve captain for booking confirmation failed", "team_id", teamID, "error", err)
			continue
		}
		if err := s.notifier.SendBookingConfirmation(ctx, captain.Email, details); err != nil {
			s.logger.WarnContext(ctx, "booking confirmation delivery failed",
				"match_id", item.ID,
				"recipient", captain.Email,
				"error", err,
			)
		}
	}
}

func (s *MatchService) deleteMatch(ctx context.Context, item match.Match) error {
	if err := s.matchRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	if item.VenueID != nil {
		if err := s.venueRepo.Delete(ctx, *item.VenueID); err != nil {
			return fmt.Errorf("delete venue: %w", err)
		}
	}
	return nil
}

func (s *MatchService) getMatch(ctx context.Context, matchID string) (match.Match, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	return item, nil
}

func (s *MatchService) requireTeam(ctx context.Context, teamID string) error {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	return nil
}
