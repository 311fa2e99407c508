package team

import (
	"fmt"
	"strings"
	"time"

	"github.com/teamtally/clubdesk/internal/domain/division"
)

// Team is a club squad registered into a division. SquadAge, Gender and
// Category describe the squad profile checked against the division's
// eligibility bounds at creation time.
type Team struct {
	ID          string
	Name        string
	ClubName    string
	DivisionID  string
	OwnerUserID string
	MaxPlayers  int
	SquadAge    int
	Gender      division.Gender
	Category    string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	if strings.TrimSpace(t.ClubName) == "" {
		return fmt.Errorf("team club name is required")
	}
	if t.DivisionID == "" {
		return fmt.Errorf("team division id is required")
	}
	if t.OwnerUserID == "" {
		return fmt.Errorf("team owner user id is required")
	}
	if t.MaxPlayers <= 0 {
		return fmt.Errorf("team max players must be greater than zero")
	}

	return nil
}

type Patch struct {
	Name       *string
	ClubName   *string
	DivisionID *string
	MaxPlayers *int
	IsActive   *bool
}

func (p Patch) Empty() bool {
	return p.Name == nil && p.ClubName == nil && p.DivisionID == nil &&
		p.MaxPlayers == nil && p.IsActive == nil
}

type Filter struct {
	OwnerUserID string
	DivisionID  string
	ClubName    string
	Active      *bool
}
