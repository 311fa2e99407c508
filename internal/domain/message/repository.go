package message

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, m Message) (Message, error)
	GetByID(ctx context.Context, id string) (Message, bool, error)
	List(ctx context.Context, f Filter) ([]Message, error)
	Update(ctx context.Context, id string, p Patch) (Message, bool, error)
	Delete(ctx context.Context, id string) error
	AddRecipient(ctx context.Context, r Recipient) error
	MarkSent(ctx context.Context, id string, at time.Time) (Message, bool, error)
	ListRecipients(ctx context.Context, messageID string) ([]Recipient, error)
}
