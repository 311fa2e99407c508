package usecase

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/teamtally/clubdesk/internal/domain/clubrules"
	"github.com/teamtally/clubdesk/internal/domain/division"
	"github.com/teamtally/clubdesk/internal/domain/team"
	"github.com/teamtally/clubdesk/internal/infrastructure/repository/memory"
)

type staticIDGenerator struct {
	id string
}

func (g staticIDGenerator) NewID() (string, error) {
	return g.id, nil
}

type sequenceIDGenerator struct {
	mu     sync.Mutex
	prefix string
	next   int
}

func (g *sequenceIDGenerator) NewID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("%s-%03d", g.prefix, g.next), nil
}

func newTeamServiceFixture(idGen staticIDGenerator) (*TeamService, *memory.TeamRepository) {
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	divisionRepo := memory.NewDivisionRepository(memory.SeedDivisions())
	userRepo := memory.NewUserRepository(memory.SeedUsers())

	return NewTeamService(teamRepo, divisionRepo, userRepo, idGen), teamRepo
}

func TestTeamService_CreateTeam(t *testing.T) {
	service, _ := newTeamServiceFixture(staticIDGenerator{id: "team-100"})

	now := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	created, err := service.CreateTeam(t.Context(), CreateTeamInput{
		Name:        "Falcons U17 B",
		ClubName:    "FC Falcons",
		DivisionID:  memory.DivisionIDU17Boys,
		OwnerUserID: memory.UserIDDemoCoach,
		MaxPlayers:  20,
		SquadAge:    16,
		Gender:      division.GenderMale,
		Category:    "youth",
	})
	if err != nil {
		t.Fatalf("create team failed: %v", err)
	}

	if created.ID != "team-100" {
		t.Fatalf("expected team id team-100, got %s", created.ID)
	}
	if !created.IsActive {
		t.Fatal("expected new team to be active")
	}
	if !created.CreatedAt.Equal(now) || !created.UpdatedAt.Equal(now) {
		t.Fatalf("expected timestamps %v, got created=%v updated=%v", now, created.CreatedAt, created.UpdatedAt)
	}
}

func TestTeamService_CreateTeam_DivisionIneligible(t *testing.T) {
	service, _ := newTeamServiceFixture(staticIDGenerator{id: "team-101"})

	_, err := service.CreateTeam(t.Context(), CreateTeamInput{
		Name:        "Falcons U14",
		ClubName:    "FC Falcons",
		DivisionID:  memory.DivisionIDU17Boys,
		OwnerUserID: memory.UserIDDemoCoach,
		MaxPlayers:  18,
		SquadAge:    13,
		Gender:      division.GenderMale,
		Category:    "youth",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if !strings.Contains(err.Error(), "age_min=15") {
		t.Fatalf("expected error to name the violated bound, got %v", err)
	}
}

func TestTeamService_CreateTeam_PlanQuotaExceeded(t *testing.T) {
	// The demo coach is on the 2_teams plan and already owns one active team.
	service, teamRepo := newTeamServiceFixture(staticIDGenerator{id: "team-102"})

	_, err := teamRepo.Create(t.Context(), team.Team{
		ID:          "team-coach-second",
		Name:        "Falcons U17 C",
		ClubName:    "FC Falcons",
		DivisionID:  memory.DivisionIDU17Boys,
		OwnerUserID: memory.UserIDDemoCoach,
		MaxPlayers:  18,
		SquadAge:    16,
		Gender:      division.GenderMale,
		Category:    "youth",
		IsActive:    true,
	})
	if err != nil {
		t.Fatalf("seed second team failed: %v", err)
	}

	_, err = service.CreateTeam(t.Context(), CreateTeamInput{
		Name:        "Falcons U17 D",
		ClubName:    "FC Falcons",
		DivisionID:  memory.DivisionIDU17Boys,
		OwnerUserID: memory.UserIDDemoCoach,
		MaxPlayers:  18,
		SquadAge:    16,
		Gender:      division.GenderMale,
		Category:    "youth",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for exceeded quota, got %v", err)
	}
	if !errors.Is(err, clubrules.ErrPlanQuotaExceeded) {
		t.Fatalf("expected plan quota sentinel in chain, got %v", err)
	}
}

func TestTeamService_CreateTeam_UnlimitedPlanSkipsQuota(t *testing.T) {
	service, teamRepo := newTeamServiceFixture(staticIDGenerator{id: "ignored"})
	idGen := &sequenceIDGenerator{prefix: "team"}
	service.idGen = idGen

	for i := 0; i < 6; i++ {
		_, err := service.CreateTeam(t.Context(), CreateTeamInput{
			Name:        fmt.Sprintf("Open Squad %d", i),
			ClubName:    "FC Falcons",
			DivisionID:  memory.DivisionIDSenior,
			OwnerUserID: memory.UserIDDemoAdmin,
			MaxPlayers:  25,
			SquadAge:    24,
			Gender:      division.GenderMixed,
			Category:    "senior",
		})
		if err != nil {
			t.Fatalf("create team %d failed: %v", i, err)
		}
	}

	count, err := teamRepo.CountActiveByOwner(t.Context(), memory.UserIDDemoAdmin)
	if err != nil {
		t.Fatalf("count active teams failed: %v", err)
	}
	// One from the seed plus six created here.
	if count != 7 {
		t.Fatalf("expected 7 active teams, got %d", count)
	}
}

func TestTeamService_CreateTeam_OwnerMissing(t *testing.T) {
	service, _ := newTeamServiceFixture(staticIDGenerator{id: "team-103"})

	_, err := service.CreateTeam(t.Context(), CreateTeamInput{
		Name:        "Ghost Squad",
		ClubName:    "FC Falcons",
		DivisionID:  memory.DivisionIDU17Boys,
		OwnerUserID: "usr-missing",
		MaxPlayers:  18,
		SquadAge:    16,
		Gender:      division.GenderMale,
		Category:    "youth",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err.Error() != "User not found" {
		t.Fatalf("expected exact message, got %q", err.Error())
	}
}

func TestTeamService_UpdateTeam_DivisionMoveRechecked(t *testing.T) {
	service, _ := newTeamServiceFixture(staticIDGenerator{id: "team-104"})

	// The seeded U17 squad cannot move into the U19 girls division.
	target := memory.DivisionIDU19Girls
	_, err := service.UpdateTeam(t.Context(), "team-falcons-u17", team.Patch{DivisionID: &target})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input moving to ineligible division, got %v", err)
	}
}

func TestTeamService_GetTeam_NotFound(t *testing.T) {
	service, _ := newTeamServiceFixture(staticIDGenerator{id: "team-105"})

	_, err := service.GetTeam(t.Context(), "team-missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Entity != "Team" {
		t.Fatalf("expected typed not-found for Team, got %v", err)
	}
}

func TestTeamService_DeleteTeam_Idempotent(t *testing.T) {
	service, _ := newTeamServiceFixture(staticIDGenerator{id: "team-106"})

	if err := service.DeleteTeam(t.Context(), "team-falcons-u17"); err != nil {
		t.Fatalf("delete team failed: %v", err)
	}
	if err := service.DeleteTeam(t.Context(), "team-falcons-u17"); err != nil {
		t.Fatalf("second delete should be a no-op, got %v", err)
	}

	_, err := service.GetTeam(t.Context(), "team-falcons-u17")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestTeamService_UpdateTeam_EmptyPatchIsNoOpRead(t *testing.T) {
	service, _ := newTeamServiceFixture(staticIDGenerator{id: "team-107"})

	before, err := service.GetTeam(t.Context(), "team-falcons-u17")
	if err != nil {
		t.Fatalf("get team: %v", err)
	}

	got, err := service.UpdateTeam(t.Context(), "team-falcons-u17", team.Patch{})
	if err != nil {
		t.Fatalf("empty patch update failed: %v", err)
	}
	if got != before {
		t.Fatalf("empty patch changed the team: before=%+v after=%+v", before, got)
	}
}

func TestTeamService_UpdateTeam_TouchesOnlySuppliedFields(t *testing.T) {
	service, _ := newTeamServiceFixture(staticIDGenerator{id: "team-108"})

	before, err := service.GetTeam(t.Context(), "team-falcons-u17")
	if err != nil {
		t.Fatalf("get team: %v", err)
	}

	name := "FC Falcons U17 Blue"
	got, err := service.UpdateTeam(t.Context(), "team-falcons-u17", team.Patch{Name: &name})
	if err != nil {
		t.Fatalf("update team: %v", err)
	}
	if got.Name != name {
		t.Fatalf("expected updated name %q, got %q", name, got.Name)
	}
	if got.ClubName != before.ClubName || got.DivisionID != before.DivisionID ||
		got.MaxPlayers != before.MaxPlayers || got.IsActive != before.IsActive {
		t.Fatalf("untouched fields changed: before=%+v after=%+v", before, got)
	}
}
