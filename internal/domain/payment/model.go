package payment

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

var AllStatuses = map[Status]struct{}{
	StatusPending: {},
	StatusPaid:    {},
	StatusOverdue: {},
}

// Payment is a membership fee owed by a user.
type Payment struct {
	ID          string
	UserID      string
	AmountCents int64
	Currency    string
	DueAt       time.Time
	PaidAt      *time.Time
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p Payment) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("payment id is required")
	}
	if p.UserID == "" {
		return fmt.Errorf("payment user id is required")
	}
	if p.AmountCents <= 0 {
		return fmt.Errorf("payment amount must be greater than zero")
	}
	if len(p.Currency) != 3 {
		return fmt.Errorf("payment currency must be a 3-letter code, got %q", p.Currency)
	}
	if _, ok := AllStatuses[p.Status]; !ok {
		return fmt.Errorf("unknown payment status %q", p.Status)
	}

	return nil
}

type Patch struct {
	AmountCents *int64
	DueAt       *time.Time
	PaidAt      *time.Time
	Status      *Status
}

func (p Patch) Empty() bool {
	return p.AmountCents == nil && p.DueAt == nil && p.PaidAt == nil && p.Status == nil
}

type Filter struct {
	UserID string
	Status Status
}
