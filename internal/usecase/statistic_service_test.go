package usecase

import (
	"errors"
	"testing"

	"github.com/teamtally/clubdesk/internal/infrastructure/repository/memory"
)

func newStatisticServiceFixture() *StatisticService {
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers(), teamRepo)
	statisticRepo := memory.NewStatisticRepository(nil)

	return NewStatisticService(statisticRepo, playerRepo, &sequenceIDGenerator{prefix: "stat"})
}

func TestStatisticService_SeasonSummary(t *testing.T) {
	service := newStatisticServiceFixture()

	rows := []CreateStatisticInput{
		{PlayerID: "ply-01", Season: "2025/26", MatchesPlayed: 4, Goals: 2, Assists: 1, Minutes: 310},
		{PlayerID: "ply-01", Season: "2025/26", MatchesPlayed: 3, Goals: 1, Assists: 2, Minutes: 255},
		{PlayerID: "ply-01", Season: "2024/25", MatchesPlayed: 5, Goals: 4, Assists: 0, Minutes: 421},
		{PlayerID: "ply-02", Season: "2025/26", MatchesPlayed: 6, Goals: 0, Assists: 3, Minutes: 540},
	}
	for _, input := range rows {
		if _, err := service.CreateStatistic(t.Context(), input); err != nil {
			t.Fatalf("create statistic failed: %v", err)
		}
	}

	summary, err := service.SeasonSummary(t.Context(), "ply-01", "2025/26")
	if err != nil {
		t.Fatalf("season summary failed: %v", err)
	}

	if summary.MatchesPlayed != 7 {
		t.Fatalf("expected 7 matches played, got %d", summary.MatchesPlayed)
	}
	if summary.Goals != 3 {
		t.Fatalf("expected 3 goals, got %d", summary.Goals)
	}
	if summary.Assists != 3 {
		t.Fatalf("expected 3 assists, got %d", summary.Assists)
	}
	if summary.Minutes != 565 {
		t.Fatalf("expected 565 minutes, got %d", summary.Minutes)
	}
}

func TestStatisticService_SeasonSummary_NoRows(t *testing.T) {
	service := newStatisticServiceFixture()

	_, err := service.SeasonSummary(t.Context(), "ply-01", "2019/20")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err.Error() != "Statistic not found" {
		t.Fatalf("expected exact message, got %q", err.Error())
	}
}

func TestStatisticService_SeasonSummary_PlayerMissing(t *testing.T) {
	service := newStatisticServiceFixture()

	_, err := service.SeasonSummary(t.Context(), "ply-ghost", "2025/26")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err.Error() != "Player not found" {
		t.Fatalf("expected exact message, got %q", err.Error())
	}
}

func TestStatisticService_CreateStatistic_NegativeCounters(t *testing.T) {
	service := newStatisticServiceFixture()

	_, err := service.CreateStatistic(t.Context(), CreateStatisticInput{
		PlayerID:      "ply-01",
		Season:        "2025/26",
		MatchesPlayed: 1,
		Goals:         -1,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
