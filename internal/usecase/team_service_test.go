package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/footynet/footynet/internal/domain/team"
	"github.com/footynet/footynet/internal/domain/user"
)

func TestTeamService_CreateTeam_AssignsCaptain(t *testing.T) {
	t.Parallel()

	users := newStubUserRepo(user.User{ID: "u1", Username: "alice"})
	teams := newStubTeamRepo()
	service := NewTeamService(teams, users, &seqIDGenerator{})

	created, err := service.CreateTeam(context.Background(), "u1", "Sunday Rovers")
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	if created.CaptainID != "u1" {
		t.Fatalf("captain not set: %+v", created)
	}
	captain := users.byID["u1"]
	if captain.TeamID == nil || *captain.TeamID != created.ID {
		t.Fatalf("captain must be placed on the new team: %+v", captain)
	}
}

func TestTeamService_CreateTeam_RejectsUserAlreadyOnTeam(t *testing.T) {
	t.Parallel()

	existing := "team-x"
	users := newStubUserRepo(user.User{ID: "u1", Username: "alice", TeamID: &existing})
	service := NewTeamService(newStubTeamRepo(), users, &seqIDGenerator{})

	_, err := service.CreateTeam(context.Background(), "u1", "Second Team")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestTeamService_CreateTeam_RejectsDuplicateName(t *testing.T) {
	t.Parallel()

	users := newStubUserRepo(user.User{ID: "u1", Username: "alice"})
	teams := newStubTeamRepo(team.Team{ID: "t1", Name: "Sunday Rovers", CaptainID: "u0"})
	service := NewTeamService(teams, users, &seqIDGenerator{})

	_, err := service.CreateTeam(context.Background(), "u1", "Sunday Rovers")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestTeamService_JoinTeam_EnforcesSingleTeamRule(t *testing.T) {
	t.Parallel()

	current := "team-a"
	users := newStubUserRepo(user.User{ID: "u1", Username: "alice", TeamID: &current})
	teams := newStubTeamRepo(
		team.Team{ID: "team-a", Name: "A", CaptainID: "u9"},
		team.Team{ID: "team-b", Name: "B", CaptainID: "u8"},
	)
	service := NewTeamService(teams, users, &seqIDGenerator{})

	err := service.JoinTeam(context.Background(), "u1", "team-b")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	member := users.byID["u1"]
	if member.TeamID == nil || *member.TeamID != "team-a" {
		t.Fatalf("membership must be unchanged: %+v", member)
	}
}

func TestTeamService_JoinTeam_UnknownTeam(t *testing.T) {
	t.Parallel()

	users := newStubUserRepo(user.User{ID: "u1", Username: "alice"})
	service := NewTeamService(newStubTeamRepo(), users, &seqIDGenerator{})

	err := service.JoinTeam(context.Background(), "u1", "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamService_LeaveTeam_CaptainBlockedWhileRosterRemains(t *testing.T) {
	t.Parallel()

	teamID := "team-a"
	users := newStubUserRepo(
		user.User{ID: "cap", Username: "alice", TeamID: &teamID},
		user.User{ID: "member", Username: "bobby", TeamID: &teamID},
	)
	teams := newStubTeamRepo(team.Team{ID: teamID, Name: "A", CaptainID: "cap"})
	service := NewTeamService(teams, users, &seqIDGenerator{})

	if err := service.LeaveTeam(context.Background(), "cap"); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for captain with roster, got %v", err)
	}

	if err := service.LeaveTeam(context.Background(), "member"); err != nil {
		t.Fatalf("member leave: %v", err)
	}
	if err := service.LeaveTeam(context.Background(), "cap"); err != nil {
		t.Fatalf("captain leave after roster emptied: %v", err)
	}
	if users.byID["cap"].TeamID != nil {
		t.Fatal("captain must be detached from the team")
	}
}

func TestTeamService_ListMembers(t *testing.T) {
	t.Parallel()

	teamID := "team-a"
	users := newStubUserRepo(
		user.User{ID: "u1", Username: "alice", TeamID: &teamID},
		user.User{ID: "u2", Username: "bobby", TeamID: &teamID},
		user.User{ID: "u3", Username: "carol"},
	)
	teams := newStubTeamRepo(team.Team{ID: teamID, Name: "A", CaptainID: "u1"})
	service := NewTeamService(teams, users, &seqIDGenerator{})

	members, err := service.ListMembers(context.Background(), teamID)
	if err != nil {
		t.Fatalf("list members: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
}
