package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/teamtally/clubdesk/internal/domain/clubrules"
	"github.com/teamtally/clubdesk/internal/domain/team"
)

type TeamRepository struct {
	mu     sync.RWMutex
	items  map[string]team.Team
	orders []string
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	items := make(map[string]team.Team, len(teams))
	orders := make([]string, 0, len(teams))

	for _, t := range teams {
		items[t.ID] = t
		orders = append(orders, t.ID)
	}

	return &TeamRepository{
		items:  items,
		orders: orders,
	}
}

func (r *TeamRepository) Create(_ context.Context, t team.Team) (team.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[t.ID] = t
	r.orders = append(r.orders, t.ID)

	return t, nil
}

func (r *TeamRepository) CreateOwned(_ context.Context, t team.Team, maxTeams int) (team.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if maxTeams >= 0 {
		active := 0
		for _, existing := range r.items {
			if existing.OwnerUserID == t.OwnerUserID && existing.IsActive {
				active++
			}
		}
		if active >= maxTeams {
			return team.Team{}, fmt.Errorf("%w: limit=%d active=%d", clubrules.ErrPlanQuotaExceeded, maxTeams, active)
		}
	}

	r.items[t.ID] = t
	r.orders = append(r.orders, t.ID)

	return t, nil
}

func (r *TeamRepository) GetByID(_ context.Context, id string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[id]
	if !ok {
		return team.Team{}, false, nil
	}

	return t, true, nil
}

func (r *TeamRepository) List(_ context.Context, f team.Filter) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.orders))
	for _, id := range r.orders {
		t := r.items[id]
		if f.OwnerUserID != "" && t.OwnerUserID != f.OwnerUserID {
			continue
		}
		if f.DivisionID != "" && t.DivisionID != f.DivisionID {
			continue
		}
		if f.ClubName != "" && t.ClubName != f.ClubName {
			continue
		}
		if f.Active != nil && t.IsActive != *f.Active {
			continue
		}
		out = append(out, t)
	}

	return out, nil
}

func (r *TeamRepository) Update(_ context.Context, id string, p team.Patch) (team.Team, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.items[id]
	if !ok {
		return team.Team{}, false, nil
	}

	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.ClubName != nil {
		t.ClubName = *p.ClubName
	}
	if p.DivisionID != nil {
		t.DivisionID = *p.DivisionID
	}
	if p.MaxPlayers != nil {
		t.MaxPlayers = *p.MaxPlayers
	}
	if p.IsActive != nil {
		t.IsActive = *p.IsActive
	}
	r.items[id] = t

	return t, true, nil
}

func (r *TeamRepository) Delete(_ context.Context, id string) error {
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

func (r *TeamRepository) CountActiveByOwner(_ context.Context, ownerUserID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, t := range r.items {
		if t.OwnerUserID == ownerUserID && t.IsActive {
			count++
		}
	}

	return count, nil
}
