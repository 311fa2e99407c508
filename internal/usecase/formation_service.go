package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/teamtally/clubdesk/internal/domain/formation"
	"github.com/teamtally/clubdesk/internal/domain/match"
	"github.com/teamtally/clubdesk/internal/domain/player"
	idgen "github.com/teamtally/clubdesk/internal/platform/id"
)

// CreateFormationInput is the incoming payload for a planned line-up.
type CreateFormationInput struct {
	MatchID   string
	Shape     string
	Positions []formation.Position
}

type FormationService struct {
	formationRepo formation.Repository
	matchRepo     match.Repository
	playerRepo    player.Repository
	idGen         idgen.Generator
	now           func() time.Time
}

func NewFormationService(
	formationRepo formation.Repository,
	matchRepo match.Repository,
	playerRepo player.Repository,
	idGen idgen.Generator,
) *FormationService {
	return &FormationService{
		formationRepo: formationRepo,
		matchRepo:     matchRepo,
		playerRepo:    playerRepo,
		idGen:         idGen,
		now:           time.Now,
	}
}

func (s *FormationService) CreateFormation(ctx context.Context, input CreateFormationInput) (formation.Formation, error) {
	input.MatchID = strings.TrimSpace(input.MatchID)
	input.Shape = strings.TrimSpace(input.Shape)

	if input.MatchID == "" {
		return formation.Formation{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if input.Shape == "" {
		return formation.Formation{}, fmt.Errorf("%w: formation shape is required", ErrInvalidInput)
	}

	if _, exists, err := s.matchRepo.GetByID(ctx, input.MatchID); err != nil {
		return formation.Formation{}, fmt.Errorf("get match: %w", err)
	} else if !exists {
		return formation.Formation{}, notFound("Match")
	}

	if err := s.checkAssignedPlayers(ctx, input.Positions); err != nil {
		return formation.Formation{}, err
	}

	formationID, err := s.idGen.NewID()
	if err != nil {
		return formation.Formation{}, fmt.Errorf("generate formation id: %w", err)
	}

	now := s.now().UTC()
	f := formation.Formation{
		ID:        formationID,
		MatchID:   input.MatchID,
		Shape:     input.Shape,
		Positions: input.Positions,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := f.Validate(); err != nil {
		return formation.Formation{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	created, err := s.formationRepo.Create(ctx, f)
	if err != nil {
		return formation.Formation{}, fmt.Errorf("create formation: %w", err)
	}

	return created, nil
}

func (s *FormationService) GetFormation(ctx context.Context, id string) (formation.Formation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return formation.Formation{}, fmt.Errorf("%w: formation id is required", ErrInvalidInput)
	}

	f, exists, err := s.formationRepo.GetByID(ctx, id)
	if err != nil {
		return formation.Formation{}, fmt.Errorf("get formation: %w", err)
	}
	if !exists {
		return formation.Formation{}, notFound("Formation")
	}

	return f, nil
}

func (s *FormationService) ListFormations(ctx context.Context, f formation.Filter) ([]formation.Formation, error) {
	formations, err := s.formationRepo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list formations: %w", err)
	}

	return formations, nil
}

func (s *FormationService) UpdateFormation(ctx context.Context, id string, p formation.Patch) (formation.Formation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return formation.Formation{}, fmt.Errorf("%w: formation id is required", ErrInvalidInput)
	}

	if p.Shape != nil || p.Positions != nil {
		probe := formation.Formation{ID: id, MatchID: "probe", Shape: "4-4-2"}
		if p.Shape != nil {
			probe.Shape = strings.TrimSpace(*p.Shape)
		}
		if p.Positions != nil {
			probe.Positions = *p.Positions
			if err := s.checkAssignedPlayers(ctx, *p.Positions); err != nil {
				return formation.Formation{}, err
			}
		}
		if err := probe.Validate(); err != nil {
			return formation.Formation{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
		}
	}

	updated, exists, err := s.formationRepo.Update(ctx, id, p)
	if err != nil {
		return formation.Formation{}, fmt.Errorf("update formation: %w", err)
	}
	if !exists {
		return formation.Formation{}, notFound("Formation")
	}

	return updated, nil
}

func (s *FormationService) DeleteFormation(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: formation id is required", ErrInvalidInput)
	}

	if err := s.formationRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete formation: %w", err)
	}

	return nil
}

func (s *FormationService) checkAssignedPlayers(ctx context.Context, positions []formation.Position) error {
	for _, pos := range positions {
		if pos.PlayerID == "" {
			continue
		}
		if _, exists, err := s.playerRepo.GetByID(ctx, pos.PlayerID); err != nil {
			return fmt.Errorf("get player: %w", err)
		} else if !exists {
			return notFound("Player")
		}
	}

	return nil
}
