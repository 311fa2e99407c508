// Package clubrules holds the stateless eligibility and quota rules consumed
// by domain services. Functions here never touch storage; callers load the
// data first and pass it in.
package clubrules

import (
	"errors"
	"fmt"

	"github.com/teamtally/clubdesk/internal/domain/division"
	"github.com/teamtally/clubdesk/internal/domain/user"
)

var (
	ErrBelowDivisionAgeMin      = errors.New("squad age below division minimum")
	ErrAboveDivisionAgeMax      = errors.New("squad age above division maximum")
	ErrDivisionGenderMismatch   = errors.New("squad gender does not match division")
	ErrDivisionCategoryMismatch = errors.New("squad category does not match division")
	ErrPlanQuotaExceeded        = errors.New("active team quota for plan exceeded")
	ErrUnknownPlan              = errors.New("unknown plan")
	ErrRosterClubCapExceeded    = errors.New("player already belongs to the maximum number of teams in this club")
)

// MaxTeamsPerClub caps how many teams of the same club a player may join.
const MaxTeamsPerClub = 2

// Candidate is the squad profile checked against a division's bounds.
type Candidate struct {
	Age      int
	Gender   division.Gender
	Category string
}

// CheckDivisionEligibility rejects a candidate squad that falls outside the
// division's configured bounds; the error names the violated bound.
func CheckDivisionEligibility(c Candidate, d division.Division) error {
	if d.AgeMin > 0 && c.Age < d.AgeMin {
		return fmt.Errorf("%w: age=%d age_min=%d", ErrBelowDivisionAgeMin, c.Age, d.AgeMin)
	}
	if d.AgeMax > 0 && c.Age > d.AgeMax {
		return fmt.Errorf("%w: age=%d age_max=%d", ErrAboveDivisionAgeMax, c.Age, d.AgeMax)
	}
	if d.Gender != division.GenderMixed && c.Gender != d.Gender {
		return fmt.Errorf("%w: squad=%s division=%s", ErrDivisionGenderMismatch, c.Gender, d.Gender)
	}
	if d.Category != "" && c.Category != d.Category {
		return fmt.Errorf("%w: squad=%s division=%s", ErrDivisionCategoryMismatch, c.Category, d.Category)
	}

	return nil
}

// TeamAllowance returns how many active teams the plan permits, -1 meaning
// unlimited.
func TeamAllowance(p user.Plan) (int, error) {
	switch p {
	case user.PlanFree:
		return 1, nil
	case user.PlanTwoTeams:
		return 2, nil
	case user.PlanFiveTeams:
		return 5, nil
	case user.PlanUnlimited:
		return -1, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPlan, p)
	}
}

// CheckTeamQuota rejects creating one more team for an owner who already has
// activeTeams active teams under the given plan.
func CheckTeamQuota(p user.Plan, activeTeams int) error {
	allowance, err := TeamAllowance(p)
	if err != nil {
		return err
	}
	if allowance < 0 {
		return nil
	}
	if activeTeams >= allowance {
		return fmt.Errorf("%w: plan=%s limit=%d active=%d", ErrPlanQuotaExceeded, p, allowance, activeTeams)
	}

	return nil
}

// CheckRosterCapacity rejects adding a player to one more team of a club when
// the player already belongs to clubTeams teams of that club.
func CheckRosterCapacity(clubTeams int) error {
	if clubTeams >= MaxTeamsPerClub {
		return fmt.Errorf("%w: max=%d current=%d", ErrRosterClubCapExceeded, MaxTeamsPerClub, clubTeams)
	}

	return nil
}
