package usecase

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/teamtally/clubdesk/internal/domain/clubrules"
	"github.com/teamtally/clubdesk/internal/domain/player"
	"github.com/teamtally/clubdesk/internal/domain/team"
	"github.com/teamtally/clubdesk/internal/infrastructure/repository/memory"
)

func newPlayerServiceFixture() (*PlayerService, *memory.TeamRepository) {
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers(), teamRepo)

	return NewPlayerService(playerRepo, teamRepo, &sequenceIDGenerator{prefix: "ply"}), teamRepo
}

func TestPlayerService_CreatePlayer(t *testing.T) {
	service, _ := newPlayerServiceFixture()

	now := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	created, err := service.CreatePlayer(t.Context(), CreatePlayerInput{
		Name:      "Nils Berger",
		BirthDate: time.Date(2008, 4, 2, 0, 0, 0, 0, time.UTC),
		Position:  player.PositionDefender,
	})
	if err != nil {
		t.Fatalf("create player failed: %v", err)
	}

	if !created.IsActive {
		t.Fatal("expected new player to be active")
	}
	if got := created.Age(now); got != 18 {
		t.Fatalf("expected age 18, got %d", got)
	}
}

func TestPlayerService_CreatePlayer_FutureBirthDate(t *testing.T) {
	service, _ := newPlayerServiceFixture()
	service.now = func() time.Time { return time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC) }

	_, err := service.CreatePlayer(t.Context(), CreatePlayerInput{
		Name:      "Unborn",
		BirthDate: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		Position:  player.PositionForward,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestPlayerService_GetPlayer_NotFoundMessage(t *testing.T) {
	service, _ := newPlayerServiceFixture()

	_, err := service.GetPlayer(t.Context(), "ply-missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err.Error() != "Player not found" {
		t.Fatalf("expected exact message, got %q", err.Error())
	}
}

func TestPlayerService_AddPlayerToTeam_ClubCap(t *testing.T) {
	service, teamRepo := newPlayerServiceFixture()

	// A third Falcons squad; ply-01 already plays for the U17 one.
	for _, id := range []string{"team-falcons-x", "team-falcons-y"} {
		_, err := teamRepo.Create(t.Context(), team.Team{
			ID:          id,
			Name:        strings.ToUpper(id),
			ClubName:    "FC Falcons",
			DivisionID:  memory.DivisionIDSenior,
			OwnerUserID: memory.UserIDDemoAdmin,
			MaxPlayers:  25,
			IsActive:    true,
		})
		if err != nil {
			t.Fatalf("seed team %s failed: %v", id, err)
		}
	}

	if err := service.AddPlayerToTeam(t.Context(), "ply-01", "team-falcons-x"); err != nil {
		t.Fatalf("second club team should be allowed: %v", err)
	}

	err := service.AddPlayerToTeam(t.Context(), "ply-01", "team-falcons-y")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input at club cap, got %v", err)
	}
	if !errors.Is(err, clubrules.ErrRosterClubCapExceeded) {
		t.Fatalf("expected roster cap sentinel in chain, got %v", err)
	}
}

func TestPlayerService_AddPlayerToTeam_TeamMissing(t *testing.T) {
	service, _ := newPlayerServiceFixture()

	err := service.AddPlayerToTeam(t.Context(), "ply-01", "team-missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err.Error() != "Team not found" {
		t.Fatalf("expected exact message, got %q", err.Error())
	}
}

func TestPlayerService_RemovePlayerFromTeam(t *testing.T) {
	service, _ := newPlayerServiceFixture()

	if err := service.RemovePlayerFromTeam(t.Context(), "ply-01", "team-falcons-u17"); err != nil {
		t.Fatalf("remove player failed: %v", err)
	}

	p, err := service.GetPlayer(t.Context(), "ply-01")
	if err != nil {
		t.Fatalf("get player failed: %v", err)
	}
	if len(p.TeamIDs) != 0 {
		t.Fatalf("expected no memberships left, got %v", p.TeamIDs)
	}

	// Removing again is a no-op.
	if err := service.RemovePlayerFromTeam(t.Context(), "ply-01", "team-falcons-u17"); err != nil {
		t.Fatalf("second remove should be a no-op, got %v", err)
	}
}

func TestPlayerService_ListPlayers_ByTeam(t *testing.T) {
	service, _ := newPlayerServiceFixture()

	players, err := service.ListPlayers(t.Context(), player.Filter{TeamID: "team-falcons-u17"})
	if err != nil {
		t.Fatalf("list players failed: %v", err)
	}
	if len(players) != 4 {
		t.Fatalf("expected 4 roster players, got %d", len(players))
	}

	_, err = service.ListPlayers(t.Context(), player.Filter{Position: "sweeper"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for unknown position, got %v", err)
	}
}
