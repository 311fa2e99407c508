package message

import (
	"fmt"
	"strings"
	"time"
)

// Message is an announcement from a user to a team's roster. Recipient rows
// are fanned out when the message is sent.
type Message struct {
	ID           string
	SenderUserID string
	TeamID       string
	Subject      string
	Body         string
	SentAt       *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (m Message) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("message id is required")
	}
	if m.SenderUserID == "" {
		return fmt.Errorf("message sender user id is required")
	}
	if m.TeamID == "" {
		return fmt.Errorf("message team id is required")
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("message subject is required")
	}
	if strings.TrimSpace(m.Body) == "" {
		return fmt.Errorf("message body is required")
	}

	return nil
}

// Recipient is one delivery row for a sent message.
type Recipient struct {
	MessageID   string
	PlayerID    string
	DeliveredAt time.Time
}

type Patch struct {
	Subject *string
	Body    *string
}

func (p Patch) Empty() bool {
	return p.Subject == nil && p.Body == nil
}

type Filter struct {
	TeamID       string
	SenderUserID string
	Sent         *bool
}
