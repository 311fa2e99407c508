package formation

import (
	"fmt"
	"regexp"
	"time"
)

var shapePattern = regexp.MustCompile(`^\d(-\d){1,3}$`)

// Position is one slot inside a formation, optionally assigned to a player.
type Position struct {
	Slot     int
	Role     string
	PlayerID string
}

// Formation is the planned line-up shape for a match.
type Formation struct {
	ID        string
	MatchID   string
	Shape     string
	Positions []Position
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (f Formation) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("formation id is required")
	}
	if f.MatchID == "" {
		return fmt.Errorf("formation match id is required")
	}
	if !shapePattern.MatchString(f.Shape) {
		return fmt.Errorf("invalid formation shape %q", f.Shape)
	}

	seen := make(map[int]struct{}, len(f.Positions))
	for _, pos := range f.Positions {
		if pos.Slot <= 0 {
			return fmt.Errorf("formation slot must be greater than zero")
		}
		if _, dup := seen[pos.Slot]; dup {
			return fmt.Errorf("duplicate formation slot %d", pos.Slot)
		}
		seen[pos.Slot] = struct{}{}
	}

	return nil
}

type Patch struct {
	Shape     *string
	Positions *[]Position
}

func (p Patch) Empty() bool {
	return p.Shape == nil && p.Positions == nil
}

type Filter struct {
	MatchID string
}
