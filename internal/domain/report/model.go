package report

import (
	"fmt"
	"strings"
	"time"
)

type Kind string

const (
	KindMatch    Kind = "match"
	KindTraining Kind = "training"
	KindIncident Kind = "incident"
)

var AllKinds = map[Kind]struct{}{
	KindMatch:    {},
	KindTraining: {},
	KindIncident: {},
}

// Report is free-form write-up authored by a coach or admin.
type Report struct {
	ID           string
	AuthorUserID string
	Kind         Kind
	Title        string
	Body         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (r Report) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("report id is required")
	}
	if r.AuthorUserID == "" {
		return fmt.Errorf("report author user id is required")
	}
	if _, ok := AllKinds[r.Kind]; !ok {
		return fmt.Errorf("unknown report kind %q", r.Kind)
	}
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("report title is required")
	}

	return nil
}

type Patch struct {
	Kind  *Kind
	Title *string
	Body  *string
}

func (p Patch) Empty() bool {
	return p.Kind == nil && p.Title == nil && p.Body == nil
}

type Filter struct {
	AuthorUserID string
	Kind         Kind
}
