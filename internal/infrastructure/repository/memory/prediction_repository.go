package memory

import (
	"context"
	"sync"

	"github.com/teamtally/clubdesk/internal/domain/prediction"
)

type PredictionRepository struct {
	mu     sync.RWMutex
	items  map[string]prediction.Prediction
	orders []string
}

func NewPredictionRepository(predictions []prediction.Prediction) *PredictionRepository {
	items := make(map[string]prediction.Prediction, len(predictions))
	orders := make([]string, 0, len(predictions))

	for _, p := range predictions {
		items[p.ID] = p
		orders = append(orders, p.ID)
	}

	return &PredictionRepository{
		items:  items,
		orders: orders,
	}
}

func (r *PredictionRepository) Create(_ context.Context, p prediction.Prediction) (prediction.Prediction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[p.ID] = p
	r.orders = append(r.orders, p.ID)

	return p, nil
}

func (r *PredictionRepository) GetByID(_ context.Context, id string) (prediction.Prediction, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[id]
	if !ok {
		return prediction.Prediction{}, false, nil
	}

	return p, true, nil
}

func (r *PredictionRepository) List(_ context.Context, f prediction.Filter) ([]prediction.Prediction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]prediction.Prediction, 0, len(r.orders))
	for _, id := range r.orders {
		p := r.items[id]
		if f.MatchID != "" && p.MatchID != f.MatchID {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}

func (r *PredictionRepository) Update(_ context.Context, id string, p prediction.Patch) (prediction.Prediction, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[id]
	if !ok {
		return prediction.Prediction{}, false, nil
	}

	if p.PredictedFor != nil {
		existing.PredictedFor = *p.PredictedFor
	}
	if p.PredictedAgst != nil {
		existing.PredictedAgst = *p.PredictedAgst
	}
	if p.Confidence != nil {
		existing.Confidence = *p.Confidence
	}
	r.items[id] = existing

	return existing, true, nil
}

func (r *PredictionRepository) Delete(_ context.Context, id string) error {
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
