package memory

import (
	"context"
	"sync"

	"github.com/teamtally/clubdesk/internal/domain/attendance"
)

type AttendanceRepository struct {
	mu     sync.RWMutex
	items  map[string]attendance.Record
	orders []string
}

func NewAttendanceRepository(records []attendance.Record) *AttendanceRepository {
	items := make(map[string]attendance.Record, len(records))
	orders := make([]string, 0, len(records))

	for _, rec := range records {
		items[rec.ID] = rec
		orders = append(orders, rec.ID)
	}

	return &AttendanceRepository{
		items:  items,
		orders: orders,
	}
}

func (r *AttendanceRepository) Create(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[rec.ID] = rec
	r.orders = append(r.orders, rec.ID)

	return rec, nil
}

func (r *AttendanceRepository) GetByID(_ context.Context, id string) (attendance.Record, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.items[id]
	if !ok {
		return attendance.Record{}, false, nil
	}

	return rec, true, nil
}

func (r *AttendanceRepository) List(_ context.Context, f attendance.Filter) ([]attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]attendance.Record, 0, len(r.orders))
	for _, id := range r.orders {
		rec := r.items[id]
		if f.MatchID != "" && rec.MatchID != f.MatchID {
			continue
		}
		if f.PlayerID != "" && rec.PlayerID != f.PlayerID {
			continue
		}
		if f.Status != "" && rec.Status != f.Status {
			continue
		}
		out = append(out, rec)
	}

	return out, nil
}

func (r *AttendanceRepository) Update(_ context.Context, id string, p attendance.Patch) (attendance.Record, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.items[id]
	if !ok {
		return attendance.Record{}, false, nil
	}

	if p.Status != nil {
		rec.Status = *p.Status
	}
	if p.Note != nil {
		rec.Note = *p.Note
	}
	r.items[id] = rec

	return rec, true, nil
}

func (r *AttendanceRepository) Delete(_ context.Context, id string) error {
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
