package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/teamtally/clubdesk/internal/domain/match"
	"github.com/teamtally/clubdesk/internal/domain/team"
	idgen "github.com/teamtally/clubdesk/internal/platform/id"
)

// CreateMatchInput is the incoming payload for scheduling a fixture.
type CreateMatchInput struct {
	TeamID    string
	Opponent  string
	KickoffAt time.Time
	Venue     match.Venue
}

type MatchService struct {
	matchRepo match.Repository
	teamRepo  team.Repository
	idGen     idgen.Generator
	now       func() time.Time
}

func NewMatchService(matchRepo match.Repository, teamRepo team.Repository, idGen idgen.Generator) *MatchService {
	return &MatchService{
		matchRepo: matchRepo,
		teamRepo:  teamRepo,
		idGen:     idGen,
		now:       time.Now,
	}
}

func (s *MatchService) CreateMatch(ctx context.Context, input CreateMatchInput) (match.Match, error) {
	input.TeamID = strings.TrimSpace(input.TeamID)
	input.Opponent = strings.TrimSpace(input.Opponent)

	if input.TeamID == "" {
		return match.Match{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if input.Opponent == "" {
		return match.Match{}, fmt.Errorf("%w: opponent is required", ErrInvalidInput)
	}
	if input.KickoffAt.IsZero() {
		return match.Match{}, fmt.Errorf("%w: kickoff time is required", ErrInvalidInput)
	}

	_, exists, err := s.teamRepo.GetByID(ctx, input.TeamID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return match.Match{}, notFound("Team")
	}

	matchID, err := s.idGen.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	now := s.now().UTC()
	m := match.Match{
		ID:        matchID,
		TeamID:    input.TeamID,
		Opponent:  input.Opponent,
		KickoffAt: input.KickoffAt,
		Venue:     input.Venue,
		Status:    match.StatusScheduled,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := m.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	created, err := s.matchRepo.Create(ctx, m)
	if err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}

	return created, nil
}

func (s *MatchService) GetMatch(ctx context.Context, id string) (match.Match, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	m, exists, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, notFound("Match")
	}

	return m, nil
}

func (s *MatchService) ListMatches(ctx context.Context, f match.Filter) ([]match.Match, error) {
	if f.Status != "" {
		if _, ok := match.AllStatuses[f.Status]; !ok {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, f.Status)
		}
	}

	matches, err := s.matchRepo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	return matches, nil
}

func (s *MatchService) UpdateMatch(ctx context.Context, id string, p match.Patch) (match.Match, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if p.Opponent != nil && strings.TrimSpace(*p.Opponent) == "" {
		return match.Match{}, fmt.Errorf("%w: opponent cannot be empty", ErrInvalidInput)
	}
	if p.Status != nil {
		if _, ok := match.AllStatuses[*p.Status]; !ok {
			return match.Match{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *p.Status)
		}
	}
	if p.Venue != nil && *p.Venue != match.VenueHome && *p.Venue != match.VenueAway {
		return match.Match{}, fmt.Errorf("%w: unknown venue %q", ErrInvalidInput, *p.Venue)
	}
	if p.GoalsFor != nil && *p.GoalsFor < 0 {
		return match.Match{}, fmt.Errorf("%w: goals for cannot be negative", ErrInvalidInput)
	}
	if p.GoalsAgainst != nil && *p.GoalsAgainst < 0 {
		return match.Match{}, fmt.Errorf("%w: goals against cannot be negative", ErrInvalidInput)
	}

	updated, exists, err := s.matchRepo.Update(ctx, id, p)
	if err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}
	if !exists {
		return match.Match{}, notFound("Match")
	}

	return updated, nil
}

func (s *MatchService) DeleteMatch(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	if err := s.matchRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}

	return nil
}
