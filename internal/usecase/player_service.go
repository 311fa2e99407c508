package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/teamtally/clubdesk/internal/domain/clubrules"
	"github.com/teamtally/clubdesk/internal/domain/player"
	"github.com/teamtally/clubdesk/internal/domain/team"
	idgen "github.com/teamtally/clubdesk/internal/platform/id"
)

// CreatePlayerInput is the incoming payload for player registration.
type CreatePlayerInput struct {
	Name      string
	BirthDate time.Time
	Position  player.Position
}

type PlayerService struct {
	playerRepo player.Repository
	teamRepo   team.Repository
	idGen      idgen.Generator
	now        func() time.Time
}

func NewPlayerService(playerRepo player.Repository, teamRepo team.Repository, idGen idgen.Generator) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

func (s *PlayerService) CreatePlayer(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	input.Name = strings.TrimSpace(input.Name)

	if input.Name == "" {
		return player.Player{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if input.BirthDate.IsZero() {
		return player.Player{}, fmt.Errorf("%w: player birth date is required", ErrInvalidInput)
	}
	if input.BirthDate.After(s.now()) {
		return player.Player{}, fmt.Errorf("%w: player birth date is in the future", ErrInvalidInput)
	}

	playerID, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	now := s.now().UTC()
	p := player.Player{
		ID:        playerID,
		Name:      input.Name,
		BirthDate: input.BirthDate,
		Position:  input.Position,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := p.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	created, err := s.playerRepo.Create(ctx, p)
	if err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	return created, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, id string) (player.Player, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	p, exists, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, notFound("Player")
	}

	return p, nil
}

func (s *PlayerService) ListPlayers(ctx context.Context, f player.Filter) ([]player.Player, error) {
	if f.Position != "" {
		if _, ok := player.AllPositions[f.Position]; !ok {
			return nil, fmt.Errorf("%w: unknown position %q", ErrInvalidInput, f.Position)
		}
	}

	players, err := s.playerRepo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return players, nil
}

func (s *PlayerService) UpdatePlayer(ctx context.Context, id string, p player.Patch) (player.Player, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return player.Player{}, fmt.Errorf("%w: player name cannot be empty", ErrInvalidInput)
	}
	if p.Position != nil {
		if _, ok := player.AllPositions[*p.Position]; !ok {
			return player.Player{}, fmt.Errorf("%w: unknown position %q", ErrInvalidInput, *p.Position)
		}
	}

	updated, exists, err := s.playerRepo.Update(ctx, id, p)
	if err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}
	if !exists {
		return player.Player{}, notFound("Player")
	}

	return updated, nil
}

func (s *PlayerService) DeletePlayer(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	if err := s.playerRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	return nil
}

// AddPlayerToTeam joins a player to a team's roster. Membership is capped per
// club; the count and the insert happen atomically in the repository.
func (s *PlayerService) AddPlayerToTeam(ctx context.Context, playerID, teamID string) error {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.AddPlayerToTeam")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	teamID = strings.TrimSpace(teamID)
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if teamID == "" {
		return fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	if _, exists, err := s.playerRepo.GetByID(ctx, playerID); err != nil {
		return fmt.Errorf("get player: %w", err)
	} else if !exists {
		return notFound("Player")
	}
	if _, exists, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return fmt.Errorf("get team: %w", err)
	} else if !exists {
		return notFound("Team")
	}

	if err := s.playerRepo.AddToTeam(ctx, playerID, teamID, clubrules.MaxTeamsPerClub); err != nil {
		if errors.Is(err, clubrules.ErrRosterClubCapExceeded) {
			return fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
		}
		return fmt.Errorf("add player to team: %w", err)
	}

	return nil
}

func (s *PlayerService) RemovePlayerFromTeam(ctx context.Context, playerID, teamID string) error {
	playerID = strings.TrimSpace(playerID)
	teamID = strings.TrimSpace(teamID)
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if teamID == "" {
		return fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	if err := s.playerRepo.RemoveFromTeam(ctx, playerID, teamID); err != nil {
		return fmt.Errorf("remove player from team: %w", err)
	}

	return nil
}
