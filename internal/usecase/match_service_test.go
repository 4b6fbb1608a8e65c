package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/footynet/footynet/internal/domain/league"
	"github.com/footynet/footynet/internal/domain/match"
	"github.com/footynet/footynet/internal/domain/standing"
	"github.com/footynet/footynet/internal/domain/team"
	"github.com/footynet/footynet/internal/domain/user"
	"github.com/footynet/footynet/internal/domain/venue"
)

type matchFixture struct {
	service   *MatchService
	matches   *stubMatchRepo
	venues    *stubVenueRepo
	teams     *stubTeamRepo
	users     *stubUserRepo
	leagues   *stubLeagueRepo
	standings *stubStandingRepo
	notifier  *recordingNotifier
	now       time.Time
}

func newMatchFixture() *matchFixture {
	teamA := "team-a"
	teamB := "team-b"
	users := newStubUserRepo(
		user.User{ID: "cap-a", Username: "alice", Email: "alice@example.com", TeamID: &teamA},
		user.User{ID: "cap-b", Username: "bobby", Email: "bobby@example.com", TeamID: &teamB},
	)
	teams := newStubTeamRepo(
		team.Team{ID: teamA, Name: "Sunday Rovers", CaptainID: "cap-a"},
		team.Team{ID: teamB, Name: "Garden FC", CaptainID: "cap-b"},
	)
	leagues := newStubLeagueRepo(
		league.League{ID: "league-1", Name: "Sunday League", TeamIDs: []string{teamA, teamB}},
	)
	standings := newStubStandingRepo(
		standing.NewRow("league-1", teamA),
		standing.NewRow("league-1", teamB),
	)
	matches := newStubMatchRepo()
	venues := newStubVenueRepo()
	notifier := &recordingNotifier{}

	f := &matchFixture{
		matches:   matches,
		venues:    venues,
		teams:     teams,
		users:     users,
		leagues:   leagues,
		standings: standings,
		notifier:  notifier,
		now:       time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC),
	}
	f.service = NewMatchService(
		matches, venues, teams, users, leagues,
		NewStandingService(standings),
		notifier,
		&seqIDGenerator{},
		nil,
	)
	f.service.now = func() time.Time { return f.now }
	return f
}

func TestMatchService_ScheduleMatch_RejectsSameTeam(t *testing.T) {
	t.Parallel()

	f := newMatchFixture()
	_, err := f.service.ScheduleMatch(context.Background(), "team-a", "team-a", f.now.Add(time.Hour))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMatchService_ScheduleMatch_ExpiresSchedulersPastMatches(t *testing.T) {
	t.Parallel()

	f := newMatchFixture()
	venueID := "old-venue"
	f.venues.byID[venueID] = venue.Venue{ID: venueID, Name: "Old Pitch"}
	f.matches.byID["stale"] = match.Match{
		ID:         "stale",
		HomeTeamID: "team-a",
		AwayTeamID: "team-b",
		KickoffAt:  f.now.Add(-48 * time.Hour),
		VenueID:    &venueID,
	}

	created, err := f.service.ScheduleMatch(context.Background(), "team-a", "team-b", f.now.Add(72*time.Hour))
	if err != nil {
		t.Fatalf("schedule match: %v", err)
	}

	if _, ok := f.matches.byID["stale"]; ok {
		t.Fatal("stale match should have been expired")
	}
	if _, ok := f.venues.byID[venueID]; ok {
		t.Fatal("stale match's venue should have been deleted")
	}
	if _, ok := f.matches.byID[created.ID]; !ok {
		t.Fatal("new match should persist")
	}
}

func TestMatchService_ScheduleMatch_PastKickoffSurvivesOwnSweep(t *testing.T) {
	t.Parallel()

	f := newMatchFixture()
	created, err := f.service.ScheduleMatch(context.Background(), "team-a", "team-b", f.now.Add(-time.Hour))
	if err != nil {
		t.Fatalf("schedule match: %v", err)
	}

	stored, ok := f.matches.byID[created.ID]
	if !ok {
		t.Fatal("newly scheduled match must persist even when its kickoff is in the past")
	}
	if !stored.KickoffAt.Equal(f.now.Add(-time.Hour)) {
		t.Fatalf("unexpected stored kickoff: %s", stored.KickoffAt)
	}
}

func TestMatchService_ExpireStaleMatches_KeepsFutureMatches(t *testing.T) {
	t.Parallel()

	f := newMatchFixture()
	f.matches.byID["future"] = match.Match{
		ID: "future", HomeTeamID: "team-a", AwayTeamID: "team-b",
		KickoffAt: f.now.Add(time.Hour),
	}
	f.matches.byID["past"] = match.Match{
		ID: "past", HomeTeamID: "team-a", AwayTeamID: "team-b",
		KickoffAt: f.now.Add(-time.Minute),
	}

	if err := f.service.ExpireStaleMatches(context.Background(), "team-a"); err != nil {
		t.Fatalf("expire stale matches: %v", err)
	}

	if _, ok := f.matches.byID["future"]; !ok {
		t.Fatal("future match must be retained")
	}
	if _, ok := f.matches.byID["past"]; ok {
		t.Fatal("past match must be deleted")
	}
}

func TestMatchService_RecordResult_UpdatesStandingsAndDeletesMatch(t *testing.T) {
	t.Parallel()

	f := newMatchFixture()
	f.matches.byID["m1"] = match.Match{
		ID: "m1", HomeTeamID: "team-a", AwayTeamID: "team-b",
		KickoffAt: f.now.Add(-time.Hour),
	}

	if err := f.service.RecordResult(context.Background(), "m1", 3, 1); err != nil {
		t.Fatalf("record result: %v", err)
	}

	home, _, _ := f.standings.GetByLeagueAndTeam(context.Background(), "league-1", "team-a")
	away, _, _ := f.standings.GetByLeagueAndTeam(context.Background(), "league-1", "team-b")
	if home.Won != 1 || home.Points != 3 || home.GoalDifference != 2 {
		t.Fatalf("unexpected home row: %+v", home)
	}
	if away.Lost != 1 || away.Points != 0 || away.GoalDifference != -2 {
		t.Fatalf("unexpected away row: %+v", away)
	}

	if _, ok := f.matches.byID["m1"]; ok {
		t.Fatal("match must be deleted after scoring")
	}
}

func TestMatchService_RecordResult_SecondCallReportsNotFound(t *testing.T) {
	t.Parallel()

	f := newMatchFixture()
	f.matches.byID["m1"] = match.Match{
		ID: "m1", HomeTeamID: "team-a", AwayTeamID: "team-b",
		KickoffAt: f.now.Add(-time.Hour),
	}

	if err := f.service.RecordResult(context.Background(), "m1", 2, 2); err != nil {
		t.Fatalf("first record result: %v", err)
	}
	if err := f.service.RecordResult(context.Background(), "m1", 2, 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second call, got %v", err)
	}
}

func TestMatchService_RecordResult_NoSharedLeagueLeavesStandingsUntouched(t *testing.T) {
	t.Parallel()

	f := newMatchFixture()
	f.leagues.byID["league-1"] = league.League{ID: "league-1", Name: "Sunday League", TeamIDs: []string{"team-a"}}
	f.matches.byID["m1"] = match.Match{
		ID: "m1", HomeTeamID: "team-a", AwayTeamID: "team-b",
		KickoffAt: f.now.Add(-time.Hour),
	}

	err := f.service.RecordResult(context.Background(), "m1", 1, 0)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for no shared league, got %v", err)
	}

	home, _, _ := f.standings.GetByLeagueAndTeam(context.Background(), "league-1", "team-a")
	if home.Played != 0 || home.Points != 0 {
		t.Fatalf("standings must stay unmodified: %+v", home)
	}
	if _, ok := f.matches.byID["m1"]; !ok {
		t.Fatal("match must survive a failed result submission")
	}
}

func TestMatchService_BookVenue_AttachesVenueAndNotifiesCaptains(t *testing.T) {
	t.Parallel()

	f := newMatchFixture()
	f.matches.byID["m1"] = match.Match{
		ID: "m1", HomeTeamID: "team-a", AwayTeamID: "team-b",
		KickoffAt: f.now.Add(24 * time.Hour),
	}

	booked, err := f.service.BookVenue(context.Background(), "m1", "Hackney Marshes", "Homerton Rd, London", nil)
	if err != nil {
		t.Fatalf("book venue: %v", err)
	}

	item, _, _ := f.matches.GetByID(context.Background(), "m1")
	if item.VenueID == nil || *item.VenueID != booked.ID {
		t.Fatalf("venue not attached: %+v", item)
	}

	if len(f.notifier.recipients) != 2 {
		t.Fatalf("expected both captains notified, got %v", f.notifier.recipients)
	}
	if f.notifier.details[0].VenueName != "Hackney Marshes" || f.notifier.details[0].HomeTeamName != "Sunday Rovers" {
		t.Fatalf("unexpected confirmation details: %+v", f.notifier.details[0])
	}
}

func TestMatchService_BookVenue_ReplacesPreviousVenue(t *testing.T) {
	t.Parallel()

	f := newMatchFixture()
	f.matches.byID["m1"] = match.Match{
		ID: "m1", HomeTeamID: "team-a", AwayTeamID: "team-b",
		KickoffAt: f.now.Add(24 * time.Hour),
	}

	first, err := f.service.BookVenue(context.Background(), "m1", "First Pitch", "Somewhere 1", nil)
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}
	second, err := f.service.BookVenue(context.Background(), "m1", "Second Pitch", "Somewhere 2", nil)
	if err != nil {
		t.Fatalf("second booking: %v", err)
	}

	if _, ok := f.venues.byID[first.ID]; ok {
		t.Fatal("replaced venue must be deleted")
	}
	item, _, _ := f.matches.GetByID(context.Background(), "m1")
	if item.VenueID == nil || *item.VenueID != second.ID {
		t.Fatalf("match must reference the new venue: %+v", item)
	}
}

func TestMatchService_BookVenue_NotifierFailureDoesNotFailBooking(t *testing.T) {
	t.Parallel()

	f := newMatchFixture()
	f.notifier.err = errors.New("relay down")
	f.matches.byID["m1"] = match.Match{
		ID: "m1", HomeTeamID: "team-a", AwayTeamID: "team-b",
		KickoffAt: f.now.Add(24 * time.Hour),
	}

	if _, err := f.service.BookVenue(context.Background(), "m1", "Pitch", "Addr", nil); err != nil {
		t.Fatalf("booking must succeed despite notifier failure: %v", err)
	}
}

func TestMatchService_ListTeamMatches_SweepsBeforeReturning(t *testing.T) {
	t.Parallel()

	f := newMatchFixture()
	f.matches.byID["past"] = match.Match{
		ID: "past", HomeTeamID: "team-a", AwayTeamID: "team-b",
		KickoffAt: f.now.Add(-time.Hour),
	}
	f.matches.byID["future"] = match.Match{
		ID: "future", HomeTeamID: "team-a", AwayTeamID: "team-b",
		KickoffAt: f.now.Add(time.Hour),
	}

	matches, err := f.service.ListTeamMatches(context.Background(), "team-a")
	if err != nil {
		t.Fatalf("list team matches: %v", err)
	}

	if len(matches) != 1 || matches[0].ID != "future" {
		t.Fatalf("expected only the future match, got %+v", matches)
	}
}
