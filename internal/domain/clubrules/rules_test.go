package clubrules

import (
	"errors"
	"strings"
	"testing"

	"github.com/teamtally/clubdesk/internal/domain/division"
	"github.com/teamtally/clubdesk/internal/domain/user"
)

func TestCheckDivisionEligibility(t *testing.T) {
	t.Parallel()

	u17 := division.Division{
		ID:       "div-u17",
		Name:     "U17 Boys",
		Gender:   division.GenderMale,
		Category: "youth",
		AgeMin:   15,
		AgeMax:   17,
	}

	tests := []struct {
		name      string
		candidate Candidate
		wantErr   error
		wantIn    string
	}{
		{
			name:      "accepts candidate inside all bounds",
			candidate: Candidate{Age: 16, Gender: division.GenderMale, Category: "youth"},
		},
		{
			name:      "rejects below age minimum naming the bound",
			candidate: Candidate{Age: 14, Gender: division.GenderMale, Category: "youth"},
			wantErr:   ErrBelowDivisionAgeMin,
			wantIn:    "age_min=15",
		},
		{
			name:      "rejects above age maximum naming the bound",
			candidate: Candidate{Age: 19, Gender: division.GenderMale, Category: "youth"},
			wantErr:   ErrAboveDivisionAgeMax,
			wantIn:    "age_max=17",
		},
		{
			name:      "rejects gender mismatch",
			candidate: Candidate{Age: 16, Gender: division.GenderFemale, Category: "youth"},
			wantErr:   ErrDivisionGenderMismatch,
		},
		{
			name:      "rejects category mismatch",
			candidate: Candidate{Age: 16, Gender: division.GenderMale, Category: "senior"},
			wantErr:   ErrDivisionCategoryMismatch,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckDivisionEligibility(tc.candidate, u17)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("expected accept, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if tc.wantIn != "" && !strings.Contains(err.Error(), tc.wantIn) {
				t.Fatalf("expected reason to contain %q, got %q", tc.wantIn, err.Error())
			}
		})
	}
}

func TestCheckDivisionEligibility_MixedAndUnboundedDivision(t *testing.T) {
	t.Parallel()

	open := division.Division{ID: "div-open", Name: "Open", Gender: division.GenderMixed}

	if err := CheckDivisionEligibility(Candidate{Age: 44, Gender: division.GenderFemale}, open); err != nil {
		t.Fatalf("expected mixed unbounded division to accept anyone, got %v", err)
	}
}

func TestCheckTeamQuota(t *testing.T) {
	t.Parallel()

	if err := CheckTeamQuota(user.PlanTwoTeams, 1); err != nil {
		t.Fatalf("one below ceiling must pass, got %v", err)
	}
	if err := CheckTeamQuota(user.PlanTwoTeams, 2); !errors.Is(err, ErrPlanQuotaExceeded) {
		t.Fatalf("at ceiling must fail with ErrPlanQuotaExceeded, got %v", err)
	}
	if err := CheckTeamQuota(user.PlanUnlimited, 1000); err != nil {
		t.Fatalf("unlimited plan must never hit the quota, got %v", err)
	}
	if err := CheckTeamQuota(user.Plan("gold"), 0); !errors.Is(err, ErrUnknownPlan) {
		t.Fatalf("unknown plan must fail, got %v", err)
	}
}

func TestTeamAllowance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		plan user.Plan
		want int
	}{
		{user.PlanFree, 1},
		{user.PlanTwoTeams, 2},
		{user.PlanFiveTeams, 5},
		{user.PlanUnlimited, -1},
	}
	for _, tc := range tests {
		got, err := TeamAllowance(tc.plan)
		if err != nil {
			t.Fatalf("allowance for %s: %v", tc.plan, err)
		}
		if got != tc.want {
			t.Fatalf("allowance for %s: got %d want %d", tc.plan, got, tc.want)
		}
	}
}

func TestCheckRosterCapacity(t *testing.T) {
	t.Parallel()

	if err := CheckRosterCapacity(MaxTeamsPerClub - 1); err != nil {
		t.Fatalf("below cap must pass, got %v", err)
	}
	if err := CheckRosterCapacity(MaxTeamsPerClub); !errors.Is(err, ErrRosterClubCapExceeded) {
		t.Fatalf("at cap must fail, got %v", err)
	}
}
