package user

import (
	"fmt"
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleCoach Role = "coach"
)

var AllRoles = map[Role]struct{}{
	RoleAdmin: {},
	RoleCoach: {},
}

// Plan is the subscription tier bounding how many active teams a user may own.
type Plan string

const (
	PlanFree      Plan = "free"
	PlanTwoTeams  Plan = "2_teams"
	PlanFiveTeams Plan = "5_teams"
	PlanUnlimited Plan = "unlimited"
)

var AllPlans = map[Plan]struct{}{
	PlanFree:      {},
	PlanTwoTeams:  {},
	PlanFiveTeams: {},
	PlanUnlimited: {},
}

// User is a club administrator or coach account.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	Plan         Plan
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("user id is required")
	}
	if strings.TrimSpace(u.Email) == "" {
		return fmt.Errorf("user email is required")
	}
	if u.PasswordHash == "" {
		return fmt.Errorf("user password hash is required")
	}
	if _, ok := AllRoles[u.Role]; !ok {
		return fmt.Errorf("unknown user role %q", u.Role)
	}
	if _, ok := AllPlans[u.Plan]; !ok {
		return fmt.Errorf("unknown user plan %q", u.Plan)
	}

	return nil
}

// Principal is the resolved identity the auth middleware attaches to requests.
type Principal struct {
	UserID string
	Email  string
	Role   Role
}

type Patch struct {
	Email    *string
	Role     *Role
	Plan     *Plan
	IsActive *bool
}

func (p Patch) Empty() bool {
	return p.Email == nil && p.Role == nil && p.Plan == nil && p.IsActive == nil
}

type Filter struct {
	Role   Role
	Plan   Plan
	Active *bool
}
