package memory

import (
	"context"
	"sync"

	"github.com/teamtally/clubdesk/internal/domain/division"
)

type DivisionRepository struct {
	mu     sync.RWMutex
	items  map[string]division.Division
	orders []string
}

func NewDivisionRepository(divisions []division.Division) *DivisionRepository {
	items := make(map[string]division.Division, len(divisions))
	orders := make([]string, 0, len(divisions))

	for _, d := range divisions {
		items[d.ID] = d
		orders = append(orders, d.ID)
	}

	return &DivisionRepository{
		items:  items,
		orders: orders,
	}
}

func (r *DivisionRepository) Create(_ context.Context, d division.Division) (division.Division, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[d.ID] = d
	r.orders = append(r.orders, d.ID)

	return d, nil
}

func (r *DivisionRepository) GetByID(_ context.Context, id string) (division.Division, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.items[id]
	if !ok {
		return division.Division{}, false, nil
	}

	return d, true, nil
}

func (r *DivisionRepository) List(_ context.Context, f division.Filter) ([]division.Division, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]division.Division, 0, len(r.orders))
	for _, id := range r.orders {
		d := r.items[id]
		if f.Gender != "" && d.Gender != f.Gender {
			continue
		}
		if f.Category != "" && d.Category != f.Category {
			continue
		}
		out = append(out, d)
	}

	return out, nil
}

func (r *DivisionRepository) Update(_ context.Context, id string, p division.Patch) (division.Division, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.items[id]
	if !ok {
		return division.Division{}, false, nil
	}

	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Gender != nil {
		d.Gender = *p.Gender
	}
	if p.Category != nil {
		d.Category = *p.Category
	}
	if p.AgeMin != nil {
		d.AgeMin = *p.AgeMin
	}
	if p.AgeMax != nil {
		d.AgeMax = *p.AgeMax
	}
	r.items[id] = d

	return d, true, nil
}

func (r *DivisionRepository) Delete(_ context.Context, id string) error {
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
