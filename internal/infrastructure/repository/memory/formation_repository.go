package memory

import (
	"context"
	"sync"

	"github.com/teamtally/clubdesk/internal/domain/formation"
)

type FormationRepository struct {
	mu     sync.RWMutex
	items  map[string]formation.Formation
	orders []string
}

func NewFormationRepository(formations []formation.Formation) *FormationRepository {
	items := make(map[string]formation.Formation, len(formations))
	orders := make([]string, 0, len(formations))

	for _, f := range formations {
		items[f.ID] = f
		orders = append(orders, f.ID)
	}

	return &FormationRepository{
		items:  items,
		orders: orders,
	}
}

func (r *FormationRepository) Create(_ context.Context, f formation.Formation) (formation.Formation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[f.ID] = f
	r.orders = append(r.orders, f.ID)

	return f, nil
}

func (r *FormationRepository) GetByID(_ context.Context, id string) (formation.Formation, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.items[id]
	if !ok {
		return formation.Formation{}, false, nil
	}

	return f, true, nil
}

func (r *FormationRepository) List(_ context.Context, f formation.Filter) ([]formation.Formation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]formation.Formation, 0, len(r.orders))
	for _, id := range r.orders {
		item := r.items[id]
		if f.MatchID != "" && item.MatchID != f.MatchID {
			continue
		}
		out = append(out, item)
	}

	return out, nil
}

func (r *FormationRepository) Update(_ context.Context, id string, p formation.Patch) (formation.Formation, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.items[id]
	if !ok {
		return formation.Formation{}, false, nil
	}

	if p.Shape != nil {
		f.Shape = *p.Shape
	}
	if p.Positions != nil {
		f.Positions = append([]formation.Position(nil), (*p.Positions)...)
	}
	r.items[id] = f

	return f, true, nil
}

func (r *FormationRepository) Delete(_ context.Context, id string) error {
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
