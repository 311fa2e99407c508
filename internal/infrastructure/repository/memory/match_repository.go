package memory

import (
	"context"
	"sync"

	"github.com/teamtally/clubdesk/internal/domain/match"
)

type MatchRepository struct {
	mu     sync.RWMutex
	items  map[string]match.Match
	orders []string
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	items := make(map[string]match.Match, len(matches))
	orders := make([]string, 0, len(matches))

	for _, m := range matches {
		items[m.ID] = m
		orders = append(orders, m.ID)
	}

	return &MatchRepository{
		items:  items,
		orders: orders,
	}
}

func (r *MatchRepository) Create(_ context.Context, m match.Match) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[m.ID] = m
	r.orders = append(r.orders, m.ID)

	return m, nil
}

func (r *MatchRepository) GetByID(_ context.Context, id string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[id]
	if !ok {
		return match.Match{}, false, nil
	}

	return m, true, nil
}

func (r *MatchRepository) List(_ context.Context, f match.Filter) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.orders))
	for _, id := range r.orders {
		m := r.items[id]
		if f.TeamID != "" && m.TeamID != f.TeamID {
			continue
		}
		if f.Status != "" && m.Status != f.Status {
			continue
		}
		out = append(out, m)
	}

	return out, nil
}

func (r *MatchRepository) Update(_ context.Context, id string, p match.Patch) (match.Match, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.items[id]
	if !ok {
		return match.Match{}, false, nil
	}

	if p.Opponent != nil {
		m.Opponent = *p.Opponent
	}
	if p.KickoffAt != nil {
		m.KickoffAt = *p.KickoffAt
	}
	if p.Venue != nil {
		m.Venue = *p.Venue
	}
	if p.GoalsFor != nil {
		m.GoalsFor = *p.GoalsFor
	}
	if p.GoalsAgainst != nil {
		m.GoalsAgainst = *p.GoalsAgainst
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
	r.items[id] = m

	return m, true, nil
}

func (r *MatchRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return nil
	}

	delete(r.items, id)
	for i, existing := range r.orders {
		if existing == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			break
		}
	}

	return nil
}
