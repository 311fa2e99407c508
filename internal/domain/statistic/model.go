package statistic

import (
	"fmt"
	"time"
)

// Statistic is one player's accumulated numbers for a season.
type Statistic struct {
	ID            string
	PlayerID      string
	Season        string
	MatchesPlayed int
	Goals         int
	Assists       int
	Minutes       int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (s Statistic) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("statistic id is required")
	}
	if s.PlayerID == "" {
		return fmt.Errorf("statistic player id is required")
	}
	if s.Season == "" {
		return fmt.Errorf("statistic season is required")
	}
	if s.MatchesPlayed < 0 || s.Goals < 0 || s.Assists < 0 || s.Minutes < 0 {
		return fmt.Errorf("statistic counters cannot be negative")
	}

	return nil
}

// SeasonSummary aggregates a player's statistics across one season.
type SeasonSummary struct {
	PlayerID      string
	Season        string
	MatchesPlayed int
	Goals         int
	Assists       int
	Minutes       int
}

type Patch struct {
	MatchesPlayed *int
	Goals         *int
	Assists       *int
	Minutes       *int
}

func (p Patch) Empty() bool {
	return p.MatchesPlayed == nil && p.Goals == nil && p.Assists == nil && p.Minutes == nil
}

type Filter struct {
	PlayerID string
	Season   string
}
