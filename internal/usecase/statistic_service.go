package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/teamtally/clubdesk/internal/domain/player"
	"github.com/teamtally/clubdesk/internal/domain/statistic"
	idgen "github.com/teamtally/clubdesk/internal/platform/id"
)

// CreateStatisticInput is the incoming payload for a player's season counters.
type CreateStatisticInput struct {
	PlayerID      string
	Season        string
	MatchesPlayed int
	Goals         int
	Assists       int
	Minutes       int
}

type StatisticService struct {
	statisticRepo statistic.Repository
	playerRepo    player.Repository
	idGen         idgen.Generator
	now           func() time.Time
}

func NewStatisticService(statisticRepo statistic.Repository, playerRepo player.Repository, idGen idgen.Generator) *StatisticService {
	return &StatisticService{
		statisticRepo: statisticRepo,
		playerRepo:    playerRepo,
		idGen:         idGen,
		now:           time.Now,
	}
}

func (s *StatisticService) CreateStatistic(ctx context.Context, input CreateStatisticInput) (statistic.Statistic, error) {
	input.PlayerID = strings.TrimSpace(input.PlayerID)
	input.Season = strings.TrimSpace(input.Season)

	if input.PlayerID == "" {
		return statistic.Statistic{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if input.Season == "" {
		return statistic.Statistic{}, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}

	if _, exists, err := s.playerRepo.GetByID(ctx, input.PlayerID); err != nil {
		return statistic.Statistic{}, fmt.Errorf("get player: %w", err)
	} else if !exists {
		return statistic.Statistic{}, notFound("Player")
	}

	statisticID, err := s.idGen.NewID()
	if err != nil {
		return statistic.Statistic{}, fmt.Errorf("generate statistic id: %w", err)
	}

	now := s.now().UTC()
	st := statistic.Statistic{
		ID:            statisticID,
		PlayerID:      input.PlayerID,
		Season:        input.Season,
		MatchesPlayed: input.MatchesPlayed,
		Goals:         input.Goals,
		Assists:       input.Assists,
		Minutes:       input.Minutes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := st.Validate(); err != nil {
		return statistic.Statistic{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	created, err := s.statisticRepo.Create(ctx, st)
	if err != nil {
		return statistic.Statistic{}, fmt.Errorf("create statistic: %w", err)
	}

	return created, nil
}

func (s *StatisticService) GetStatistic(ctx context.Context, id string) (statistic.Statistic, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return statistic.Statistic{}, fmt.Errorf("%w: statistic id is required", ErrInvalidInput)
	}

	st, exists, err := s.statisticRepo.GetByID(ctx, id)
	if err != nil {
		return statistic.Statistic{}, fmt.Errorf("get statistic: %w", err)
	}
	if !exists {
		return statistic.Statistic{}, notFound("Statistic")
	}

	return st, nil
}

func (s *StatisticService) ListStatistics(ctx context.Context, f statistic.Filter) ([]statistic.Statistic, error) {
	statistics, err := s.statisticRepo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list statistics: %w", err)
	}

	return statistics, nil
}

// SeasonSummary totals a player's counters across one season.
func (s *StatisticService) SeasonSummary(ctx context.Context, playerID, season string) (statistic.SeasonSummary, error) {
	playerID = strings.TrimSpace(playerID)
	season = strings.TrimSpace(season)

	if playerID == "" {
		return statistic.SeasonSummary{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if season == "" {
		return statistic.SeasonSummary{}, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}

	if _, exists, err := s.playerRepo.GetByID(ctx, playerID); err != nil {
		return statistic.SeasonSummary{}, fmt.Errorf("get player: %w", err)
	} else if !exists {
		return statistic.SeasonSummary{}, notFound("Player")
	}

	summary, exists, err := s.statisticRepo.SummarizeSeason(ctx, playerID, season)
	if err != nil {
		return statistic.SeasonSummary{}, fmt.Errorf("summarize season: %w", err)
	}
	if !exists {
		return statistic.SeasonSummary{}, notFound("Statistic")
	}

	return summary, nil
}

func (s *StatisticService) UpdateStatistic(ctx context.Context, id string, p statistic.Patch) (statistic.Statistic, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return statistic.Statistic{}, fmt.Errorf("%w: statistic id is required", ErrInvalidInput)
	}
	for name, v := range map[string]*int{
		"matches played": p.MatchesPlayed,
		"goals":          p.Goals,
		"assists":        p.Assists,
		"minutes":        p.Minutes,
	} {
		if v != nil && *v < 0 {
			return statistic.Statistic{}, fmt.Errorf("%w: %s cannot be negative", ErrInvalidInput, name)
		}
	}

	updated, exists, err := s.statisticRepo.Update(ctx, id, p)
	if err != nil {
		return statistic.Statistic{}, fmt.Errorf("update statistic: %w", err)
	}
	if !exists {
		return statistic.Statistic{}, notFound("Statistic")
	}

	return updated, nil
}

func (s *StatisticService) DeleteStatistic(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: statistic id is required", ErrInvalidInput)
	}

	if err := s.statisticRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete statistic: %w", err)
	}

	return nil
}
