package memory

import (
	"context"
	"sync"

	"github.com/teamtally/clubdesk/internal/domain/report"
)

type ReportRepository struct {
	mu     sync.RWMutex
	items  map[string]report.Report
	orders []string
}

func NewReportRepository(reports []report.Report) *ReportRepository {
	items := make(map[string]report.Report, len(reports))
	orders := make([]string, 0, len(reports))

	for _, rep := range reports {
		items[rep.ID] = rep
		orders = append(orders, rep.ID)
	}

	return &ReportRepository{
		items:  items,
		orders: orders,
	}
}

func (r *ReportRepository) Create(_ context.Context, rep report.Report) (report.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[rep.ID] = rep
	r.orders = append(r.orders, rep.ID)

	return rep, nil
}

func (r *ReportRepository) GetByID(_ context.Context, id string) (report.Report, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rep, ok := r.items[id]
	if !ok {
		return report.Report{}, false, nil
	}

	return rep, true, nil
}

func (r *ReportRepository) List(_ context.Context, f report.Filter) ([]report.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]report.Report, 0, len(r.orders))
	for _, id := range r.orders {
		rep := r.items[id]
		if f.AuthorUserID != "" && rep.AuthorUserID != f.AuthorUserID {
			continue
		}
		if f.Kind != "" && rep.Kind != f.Kind {
			continue
		}
		out = append(out, rep)
	}

	return out, nil
}

func (r *ReportRepository) Update(_ context.Context, id string, p report.Patch) (report.Report, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rep, ok := r.items[id]
	if !ok {
		return report.Report{}, false, nil
	}

	if p.Kind != nil {
		rep.Kind = *p.Kind
	}
	if p.Title != nil {
		rep.Title = *p.Title
	}
	if p.Body != nil {
		rep.Body = *p.Body
	}
	r.items[id] = rep

	return rep, true, nil
}

func (r *ReportRepository) Delete(_ context.Context, id string) error {
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
