package attendance

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusExcused Status = "excused"
)

var AllStatuses = map[Status]struct{}{
	StatusPresent: {},
	StatusAbsent:  {},
	StatusExcused: {},
}

// Record marks one player's attendance at one match.
type Record struct {
	ID        string
	PlayerID  string
	MatchID   string
	Status    Status
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r Record) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("attendance id is required")
	}
	if r.PlayerID == "" {
		return fmt.Errorf("attendance player id is required")
	}
	if r.MatchID == "" {
		return fmt.Errorf("attendance match id is required")
	}
	if _, ok := AllStatuses[r.Status]; !ok {
		return fmt.Errorf("unknown attendance status %q", r.Status)
	}

	return nil
}

type Patch struct {
	Status *Status
	Note   *string
}

func (p Patch) Empty() bool {
	return p.Status == nil && p.Note == nil
}

type Filter struct {
	MatchID  string
	PlayerID string
	Status   Status
}
