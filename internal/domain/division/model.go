package division

import (
	"fmt"
	"strings"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderMixed  Gender = "mixed"
)

var AllGenders = map[Gender]struct{}{
	GenderMale:   {},
	GenderFemale: {},
	GenderMixed:  {},
}

// Division is a competition bracket with eligibility bounds for teams.
// An AgeMin/AgeMax of zero means the bound is not set.
type Division struct {
	ID        string
	Name      string
	Gender    Gender
	Category  string
	AgeMin    int
	AgeMax    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (d Division) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("division id is required")
	}
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("division name is required")
	}
	if _, ok := AllGenders[d.Gender]; !ok {
		return fmt.Errorf("unknown division gender %q", d.Gender)
	}
	if d.AgeMin < 0 || d.AgeMax < 0 {
		return fmt.Errorf("division age bounds cannot be negative")
	}
	if d.AgeMin > 0 && d.AgeMax > 0 && d.AgeMin > d.AgeMax {
		return fmt.Errorf("division age_min %d exceeds age_max %d", d.AgeMin, d.AgeMax)
	}

	return nil
}

type Patch struct {
	Name     *string
	Gender   *Gender
	Category *string
	AgeMin   *int
	AgeMax   *int
}

func (p Patch) Empty() bool {
	return p.Name == nil && p.Gender == nil && p.Category == nil && p.AgeMin == nil && p.AgeMax == nil
}

type Filter struct {
	Gender   Gender
	Category string
}
