package player

import (
	"fmt"
	"strings"
	"time"
)

type Position string

const (
	PositionGoalkeeper Position = "goalkeeper"
	PositionDefender   Position = "defender"
	PositionMidfielder Position = "midfielder"
	PositionForward    Position = "forward"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

// Player is a registered club member. Team membership lives in the
// team_players join relation, capped per club by clubrules.
type Player struct {
	ID        string
	Name      string
	BirthDate time.Time
	Position  Position
	IsActive  bool
	TeamIDs   []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if p.BirthDate.IsZero() {
		return fmt.Errorf("player birth date is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("unknown player position %q", p.Position)
	}

	return nil
}

// Age is the player's age in full years at the given moment.
func (p Player) Age(at time.Time) int {
	years := at.Year() - p.BirthDate.Year()
	anniversary := p.BirthDate.AddDate(years, 0, 0)
	if anniversary.After(at) {
		years--
	}
	return years
}

type Patch struct {
	Name     *string
	Position *Position
	IsActive *bool
}

func (p Patch) Empty() bool {
	return p.Name == nil && p.Position == nil && p.IsActive == nil
}

type Filter struct {
	TeamID   string
	Position Position
	Active   *bool
}
