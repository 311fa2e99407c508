package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/teamtally/clubdesk/internal/domain/clubrules"
	"github.com/teamtally/clubdesk/internal/domain/division"
	"github.com/teamtally/clubdesk/internal/domain/team"
	"github.com/teamtally/clubdesk/internal/domain/user"
	idgen "github.com/teamtally/clubdesk/internal/platform/id"
)

// CreateTeamInput is the incoming payload for team registration.
type CreateTeamInput struct {
	Name        string
	ClubName    string
	DivisionID  string
	OwnerUserID string
	MaxPlayers  int
	SquadAge    int
	Gender      division.Gender
	Category    string
}

type TeamService struct {
	teamRepo     team.Repository
	divisionRepo division.Repository
	userRepo     user.Repository
	idGen        idgen.Generator
	now          func() time.Time
}

func NewTeamService(
	teamRepo team.Repository,
	divisionRepo division.Repository,
	userRepo user.Repository,
	idGen idgen.Generator,
) *TeamService {
	return &TeamService{
		teamRepo:     teamRepo,
		divisionRepo: divisionRepo,
		userRepo:     userRepo,
		idGen:        idGen,
		now:          time.Now,
	}
}

// CreateTeam registers a squad into a division. The division's eligibility
// bounds and the owner's plan quota are both enforced; the quota check and
// the insert happen atomically in the repository.
func (s *TeamService) CreateTeam(ctx context.Context, input CreateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.CreateTeam")
	defer span.End()

	input.Name = strings.TrimSpace(input.Name)
	input.ClubName = strings.TrimSpace(input.ClubName)
	input.DivisionID = strings.TrimSpace(input.DivisionID)
	input.OwnerUserID = strings.TrimSpace(input.OwnerUserID)
	input.Category = strings.TrimSpace(input.Category)

	if input.Name == "" {
		return team.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}
	if input.ClubName == "" {
		return team.Team{}, fmt.Errorf("%w: club name is required", ErrInvalidInput)
	}
	if input.DivisionID == "" {
		return team.Team{}, fmt.Errorf("%w: division id is required", ErrInvalidInput)
	}
	if input.OwnerUserID == "" {
		return team.Team{}, fmt.Errorf("%w: owner user id is required", ErrInvalidInput)
	}
	if input.MaxPlayers <= 0 {
		return team.Team{}, fmt.Errorf("%w: max players must be greater than zero", ErrInvalidInput)
	}
	if input.SquadAge <= 0 {
		return team.Team{}, fmt.Errorf("%w: squad age must be greater than zero", ErrInvalidInput)
	}

	owner, exists, err := s.userRepo.GetByID(ctx, input.OwnerUserID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get owner: %w", err)
	}
	if !exists {
		return team.Team{}, notFound("User")
	}

	div, exists, err := s.divisionRepo.GetByID(ctx, input.DivisionID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get division: %w", err)
	}
	if !exists {
		return team.Team{}, notFound("Division")
	}

	candidate := clubrules.Candidate{
		Age:      input.SquadAge,
		Gender:   input.Gender,
		Category: input.Category,
	}
	if err := clubrules.CheckDivisionEligibility(candidate, div); err != nil {
		return team.Team{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	maxTeams, err := clubrules.TeamAllowance(owner.Plan)
	if err != nil {
		return team.Team{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	teamID, err := s.idGen.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	now := s.now().UTC()
	t := team.Team{
		ID:          teamID,
		Name:        input.Name,
		ClubName:    input.ClubName,
		DivisionID:  input.DivisionID,
		OwnerUserID: input.OwnerUserID,
		MaxPlayers:  input.MaxPlayers,
		SquadAge:    input.SquadAge,
		Gender:      input.Gender,
		Category:    input.Category,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := t.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	created, err := s.teamRepo.CreateOwned(ctx, t, maxTeams)
	if err != nil {
		if errors.Is(err, clubrules.ErrPlanQuotaExceeded) {
			return team.Team{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
		}
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	return created, nil
}

func (s *TeamService) GetTeam(ctx context.Context, id string) (team.Team, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	t, exists, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, notFound("Team")
	}

	return t, nil
}

func (s *TeamService) ListTeams(ctx context.Context, f team.Filter) ([]team.Team, error) {
	teams, err := s.teamRepo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return teams, nil
}

// UpdateTeam applies the patch. Moving a team into another division re-checks
// the squad profile against the new division's bounds.
func (s *TeamService) UpdateTeam(ctx context.Context, id string, p team.Patch) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.UpdateTeam")
	defer span.End()

	id = strings.TrimSpace(id)
	if id == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return team.Team{}, fmt.Errorf("%w: team name cannot be empty", ErrInvalidInput)
	}
	if p.MaxPlayers != nil && *p.MaxPlayers <= 0 {
		return team.Team{}, fmt.Errorf("%w: max players must be greater than zero", ErrInvalidInput)
	}

	if p.DivisionID != nil {
		current, exists, err := s.teamRepo.GetByID(ctx, id)
		if err != nil {
			return team.Team{}, fmt.Errorf("get team: %w", err)
		}
		if !exists {
			return team.Team{}, notFound("Team")
		}

		div, exists, err := s.divisionRepo.GetByID(ctx, strings.TrimSpace(*p.DivisionID))
		if err != nil {
			return team.Team{}, fmt.Errorf("get division: %w", err)
		}
		if !exists {
			return team.Team{}, notFound("Division")
		}

		candidate := clubrules.Candidate{
			Age:      current.SquadAge,
			Gender:   current.Gender,
			Category: current.Category,
		}
		if err := clubrules.CheckDivisionEligibility(candidate, div); err != nil {
			return team.Team{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
		}
	}

	updated, exists, err := s.teamRepo.Update(ctx, id, p)
	if err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}
	if !exists {
		return team.Team{}, notFound("Team")
	}

	return updated, nil
}

func (s *TeamService) DeleteTeam(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	if err := s.teamRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}

	return nil
}
