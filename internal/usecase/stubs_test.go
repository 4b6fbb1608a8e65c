package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/footynet/footynet/internal/domain/league"
	"github.com/footynet/footynet/internal/domain/match"
	"github.com/footynet/footynet/internal/domain/standing"
	"github.com/footynet/footynet/internal/domain/team"
	"github.com/footynet/footynet/internal/domain/user"
	"github.com/footynet/footynet/internal/domain/venue"
)

type seqIDGenerator struct {
	mu   sync.Mutex
	next int
}

func (g *seqIDGenerator) NewID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("id-%d", g.next), nil
}

type stubUserRepo struct {
	byID map[string]user.User
}

func newStubUserRepo(users ...user.User) *stubUserRepo {
	r := &stubUserRepo{byID: make(map[string]user.User)}
	for _, u := range users {
		r.byID[u.ID] = u
	}
	return r
}

func (r *stubUserRepo) Create(_ context.Context, item user.User) error {
	r.byID[item.ID] = item
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, userID string) (user.User, bool, error) {
	item, ok := r.byID[userID]
	return item, ok, nil
}

func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (user.User, bool, error) {
	for _, item := range r.byID {
		if item.Username == username {
			return item, true, nil
		}
	}
	return user.User{}, false, nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (user.User, bool, error) {
	for _, item := range r.byID {
		if item.Email == email {
			return item, true, nil
		}
	}
	return user.User{}, false, nil
}

func (r *stubUserRepo) ListByTeam(_ context.Context, teamID string) ([]user.User, error) {
	var out []user.User
	for _, item := range r.byID {
		if item.TeamID != nil && *item.TeamID == teamID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *stubUserRepo) SetTeam(_ context.Context, userID string, teamID *string) error {
	item, ok := r.byID[userID]
	if !ok {
		return fmt.Errorf("user %s not found", userID)
	}
	item.TeamID = teamID
	r.byID[userID] = item
	return nil
}

type stubTeamRepo struct {
	byID map[string]team.Team
}

func newStubTeamRepo(teams ...team.Team) *stubTeamRepo {
	r := &stubTeamRepo{byID: make(map[string]team.Team)}
	for _, t := range teams {
		r.byID[t.ID] = t
	}
	return r
}

func (r *stubTeamRepo) Create(_ context.Context, item team.Team) error {
	r.byID[item.ID] = item
	return nil
}

func (r *stubTeamRepo) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	item, ok := r.byID[teamID]
	return item, ok, nil
}

func (r *stubTeamRepo) GetByName(_ context.Context, name string) (team.Team, bool, error) {
	for _, item := range r.byID {
		if item.Name == name {
			return item, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (r *stubTeamRepo) List(_ context.Context) ([]team.Team, error) {
	out := make([]team.Team, 0, len(r.byID))
	for _, item := range r.byID {
		out = append(out, item)
	}
	return out, nil
}

type stubMatchRepo struct {
	byID map[string]match.Match
}

func newStubMatchRepo(matches ...match.Match) *stubMatchRepo {
	r := &stubMatchRepo{byID: make(map[string]match.Match)}
	for _, m := range matches {
		r.byID[m.ID] = m
	}
	return r
}

func (r *stubMatchRepo) Create(_ context.Context, item match.Match) error {
	r.byID[item.ID] = item
	return nil
}

func (r *stubMatchRepo) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	item, ok := r.byID[matchID]
	return item, ok, nil
}

func (r *stubMatchRepo) ListByTeam(_ context.Context, teamID string) ([]match.Match, error) {
	var out []match.Match
	for _, item := range r.byID {
		if item.References(teamID) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *stubMatchRepo) SetVenue(_ context.Context, matchID string, venueID *string) error {
	item, ok := r.byID[matchID]
	if !ok {
		return fmt.Errorf("match %s not found", matchID)
	}
	item.VenueID = venueID
	r.byID[matchID] = item
	return nil
}

func (r *stubMatchRepo) Delete(_ context.Context, matchID string) error {
	if _, ok := r.byID[matchID]; !ok {
		return fmt.Errorf("match %s not found", matchID)
	}
	delete(r.byID, matchID)
	return nil
}

type stubVenueRepo struct {
	byID map[string]venue.Venue
}

func newStubVenueRepo(venues ...venue.Venue) *stubVenueRepo {
	r := &stubVenueRepo{byID: make(map[string]venue.Venue)}
	for _, v := range venues {
		r.byID[v.ID] = v
	}
	return r
}

func (r *stubVenueRepo) Create(_ context.Context, item venue.Venue) error {
	r.byID[item.ID] = item
	return nil
}

func (r *stubVenueRepo) GetByID(_ context.Context, venueID string) (venue.Venue, bool, error) {
	item, ok := r.byID[venueID]
	return item, ok, nil
}

func (r *stubVenueRepo) Delete(_ context.Context, venueID string) error {
	delete(r.byID, venueID)
	return nil
}

type stubLeagueRepo struct {
	byID  map[string]league.League
	order []string
}

func newStubLeagueRepo(leagues ...league.League) *stubLeagueRepo {
	r := &stubLeagueRepo{byID: make(map[string]league.League)}
	for _, l := range leagues {
		r.byID[l.ID] = l
		r.order = append(r.order, l.ID)
	}
	return r
}

func (r *stubLeagueRepo) Create(_ context.Context, item league.League) error {
	r.byID[item.ID] = item
	r.order = append(r.order, item.ID)
	return nil
}

func (r *stubLeagueRepo) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	item, ok := r.byID[leagueID]
	return item, ok, nil
}

func (r *stubLeagueRepo) List(_ context.Context) ([]league.League, error) {
	out := make([]league.League, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *stubLeagueRepo) AddTeam(_ context.Context, leagueID, teamID string) error {
	item, ok := r.byID[leagueID]
	if !ok {
		return fmt.Errorf("league %s not found", leagueID)
	}
	item.TeamIDs = append(item.TeamIDs, teamID)
	r.byID[leagueID] = item
	return nil
}

func (r *stubLeagueRepo) FindByTeams(_ context.Context, teamIDs ...string) ([]league.League, error) {
	var out []league.League
	for _, id := range r.order {
		item := r.byID[id]
		all := true
		for _, teamID := range teamIDs {
			if !item.HasTeam(teamID) {
				all = false
				break
			}
		}
		if all {
			out = append(out, item)
		}
	}
	return out, nil
}

type stubStandingRepo struct {
	rows map[string]standing.Standing
}

func standingKey(leagueID, teamID string) string {
	return leagueID + "::" + teamID
}

func newStubStandingRepo(rows ...standing.Standing) *stubStandingRepo {
	r := &stubStandingRepo{rows: make(map[string]standing.Standing)}
	for _, row := range rows {
		r.rows[standingKey(row.LeagueID, row.TeamID)] = row
	}
	return r
}

func (r *stubStandingRepo) Create(_ context.Context, row standing.Standing) error {
	r.rows[standingKey(row.LeagueID, row.TeamID)] = row
	return nil
}

func (r *stubStandingRepo) GetByLeagueAndTeam(_ context.Context, leagueID, teamID string) (standing.Standing, bool, error) {
	row, ok := r.rows[standingKey(leagueID, teamID)]
	return row, ok, nil
}

func (r *stubStandingRepo) ListByLeague(_ context.Context, leagueID string) ([]standing.Standing, error) {
	var out []standing.Standing
	for _, row := range r.rows {
		if row.LeagueID == leagueID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *stubStandingRepo) UpdatePair(_ context.Context, a, b standing.Standing) error {
	r.rows[standingKey(a.LeagueID, a.TeamID)] = a
	r.rows[standingKey(b.LeagueID, b.TeamID)] = b
	return nil
}

type recordingNotifier struct {
	mu         sync.Mutex
	recipients []string
	details    []BookingDetails
	err        error
}

func (n *recordingNotifier) SendBookingConfirmation(_ context.Context, recipient string, details BookingDetails) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.recipients = append(n.recipients, recipient)
	n.details = append(n.details, details)
	return n.err
}
