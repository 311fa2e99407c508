package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/teamtally/clubdesk/internal/domain/message"
)

type MessageRepository struct {
	mu         sync.RWMutex
	items      map[string]message.Message
	orders     []string
	recipients map[string]map[string]message.Recipient
}

func NewMessageRepository(messages []message.Message) *MessageRepository {
	items := make(map[string]message.Message, len(messages))
	orders := make([]string, 0, len(messages))

	for _, m := range messages {
		items[m.ID] = m
		orders = append(orders, m.ID)
	}

	return &MessageRepository{
		items:      items,
		orders:     orders,
		recipients: make(map[string]map[string]message.Recipient),
	}
}

func (r *MessageRepository) Create(_ context.Context, m message.Message) (message.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[m.ID] = m
	r.orders = append(r.orders, m.ID)

	return m, nil
}

func (r *MessageRepository) GetByID(_ context.Context, id string) (message.Message, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[id]
	if !ok {
		return message.Message{}, false, nil
	}

	return m, true, nil
}

func (r *MessageRepository) List(_ context.Context, f message.Filter) ([]message.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]message.Message, 0, len(r.orders))
	for _, id := range r.orders {
		m := r.items[id]
		if f.TeamID != "" && m.TeamID != f.TeamID {
			continue
		}
		if f.SenderUserID != "" && m.SenderUserID != f.SenderUserID {
			continue
		}
		if f.Sent != nil && (m.SentAt != nil) != *f.Sent {
			continue
		}
		out = append(out, m)
	}

	return out, nil
}

func (r *MessageRepository) Update(_ context.Context, id string, p message.Patch) (message.Message, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.items[id]
	if !ok {
		return message.Message{}, false, nil
	}

	if p.Subject != nil {
		m.Subject = *p.Subject
	}
	if p.Body != nil {
		m.Body = *p.Body
	}
	r.items[id] = m

	return m, true, nil
}

func (r *MessageRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return nil
	}

	delete(r.items, id)
	delete(r.recipients, id)
	for i, existing := range r.orders {
		if existing == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			break
		}
	}

	return nil
}

func (r *MessageRepository) AddRecipient(_ context.Context, rec message.Recipient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.recipients[rec.MessageID] == nil {
		r.recipients[rec.MessageID] = make(map[string]message.Recipient)
	}
	if _, delivered := r.recipients[rec.MessageID][rec.PlayerID]; delivered {
		return nil
	}
	r.recipients[rec.MessageID][rec.PlayerID] = rec

	return nil
}

func (r *MessageRepository) MarkSent(_ context.Context, id string, at time.Time) (message.Message, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.items[id]
	if !ok {
		return message.Message{}, false, nil
	}

	m.SentAt = &at
	r.items[id] = m

	return m, true, nil
}

func (r *MessageRepository) ListRecipients(_ context.Context, messageID string) ([]message.Recipient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]message.Recipient, 0, len(r.recipients[messageID]))
	for _, rec := range r.recipients[messageID] {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })

	return out, nil
}
