package match

import (
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusPlayed    Status = "played"
	StatusCancelled Status = "cancelled"
)

var AllStatuses = map[Status]struct{}{
	StatusScheduled: {},
	StatusPlayed:    {},
	StatusCancelled: {},
}

type Venue string

const (
	VenueHome Venue = "home"
	VenueAway Venue = "away"
)

// Match is a single fixture for one of the club's teams.
type Match struct {
	ID           string
	TeamID       string
	Opponent     string
	KickoffAt    time.Time
	Venue        Venue
	GoalsFor     int
	GoalsAgainst int
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.TeamID == "" {
		return fmt.Errorf("match team id is required")
	}
	if strings.TrimSpace(m.Opponent) == "" {
		return fmt.Errorf("match opponent is required")
	}
	if m.KickoffAt.IsZero() {
		return fmt.Errorf("match kickoff time is required")
	}
	if m.Venue != VenueHome && m.Venue != VenueAway {
		return fmt.Errorf("unknown match venue %q", m.Venue)
	}
	if _, ok := AllStatuses[m.Status]; !ok {
		return fmt.Errorf("unknown match status %q", m.Status)
	}

	return nil
}

type Patch struct {
	Opponent     *string
	KickoffAt    *time.Time
	Venue        *Venue
	GoalsFor     *int
	GoalsAgainst *int
	Status       *Status
}

func (p Patch) Empty() bool {
	return p.Opponent == nil && p.KickoffAt == nil && p.Venue == nil &&
		p.GoalsFor == nil && p.GoalsAgainst == nil && p.Status == nil
}

type Filter struct {
	TeamID string
	Status Status
}
