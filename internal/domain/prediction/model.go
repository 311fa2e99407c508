package prediction

import (
	"fmt"
	"time"
)

// Prediction is a score forecast for a match.
type Prediction struct {
	ID            string
	MatchID       string
	PredictedFor  int
	PredictedAgst int
	Confidence    float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (p Prediction) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("prediction id is required")
	}
	if p.MatchID == "" {
		return fmt.Errorf("prediction match id is required")
	}
	if p.PredictedFor < 0 || p.PredictedAgst < 0 {
		return fmt.Errorf("predicted scores cannot be negative")
	}
	if p.Confidence < 0 || p.Confidence > 1 {
		return fmt.Errorf("prediction confidence must be within [0,1], got %g", p.Confidence)
	}

	return nil
}

type Patch struct {
	PredictedFor  *int
	PredictedAgst *int
	Confidence    *float64
}

func (p Patch) Empty() bool {
	return p.PredictedFor == nil && p.PredictedAgst == nil && p.Confidence == nil
}

type Filter struct {
	MatchID string
}
