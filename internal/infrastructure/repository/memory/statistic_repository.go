package memory

import (
	"context"
	"sync"

	"github.com/teamtally/clubdesk/internal/domain/statistic"
)

type StatisticRepository struct {
	mu     sync.RWMutex
	items  map[string]statistic.Statistic
	orders []string
}

func NewStatisticRepository(statistics []statistic.Statistic) *StatisticRepository {
	items := make(map[string]statistic.Statistic, len(statistics))
	orders := make([]string, 0, len(statistics))

	for _, s := range statistics {
		items[s.ID] = s
		orders = append(orders, s.ID)
	}

	return &StatisticRepository{
		items:  items,
		orders: orders,
	}
}

func (r *StatisticRepository) Create(_ context.Context, s statistic.Statistic) (statistic.Statistic, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[s.ID] = s
	r.orders = append(r.orders, s.ID)

	return s, nil
}

func (r *StatisticRepository) GetByID(_ context.Context, id string) (statistic.Statistic, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[id]
	if !ok {
		return statistic.Statistic{}, false, nil
	}

	return s, true, nil
}

func (r *StatisticRepository) List(_ context.Context, f statistic.Filter) ([]statistic.Statistic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]statistic.Statistic, 0, len(r.orders))
	for _, id := range r.orders {
		s := r.items[id]
		if f.PlayerID != "" && s.PlayerID != f.PlayerID {
			continue
		}
		if f.Season != "" && s.Season != f.Season {
			continue
		}
		out = append(out, s)
	}

	return out, nil
}

func (r *StatisticRepository) Update(_ context.Context, id string, p statistic.Patch) (statistic.Statistic, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.items[id]
	if !ok {
		return statistic.Statistic{}, false, nil
	}

	if p.MatchesPlayed != nil {
		s.MatchesPlayed = *p.MatchesPlayed
	}
	if p.Goals != nil {
		s.Goals = *p.Goals
	}
	if p.Assists != nil {
		s.Assists = *p.Assists
	}
	if p.Minutes != nil {
		s.Minutes = *p.Minutes
	}
	r.items[id] = s

	return s, true, nil
}

func (r *StatisticRepository) Delete(_ context.Context, id string) error {
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

func (r *StatisticRepository) SummarizeSeason(_ context.Context, playerID, season string) (statistic.SeasonSummary, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summary := statistic.SeasonSummary{PlayerID: playerID, Season: season}
	found := false
	for _, id := range r.orders {
		s := r.items[id]
		if s.PlayerID != playerID || s.Season != season {
			continue
		}
		found = true
		summary.MatchesPlayed += s.MatchesPlayed
		summary.Goals += s.Goals
		summary.Assists += s.Assists
		summary.Minutes += s.Minutes
	}
	if !found {
		return statistic.SeasonSummary{}, false, nil
	}

	return summary, true, nil
}
