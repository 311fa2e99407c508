package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/teamtally/clubdesk/internal/domain/clubrules"
	"github.com/teamtally/clubdesk/internal/domain/player"
)

// PlayerRepository holds players and their team memberships. It consults the
// team repository for club names when enforcing the roster cap.
type PlayerRepository struct {
	mu          sync.RWMutex
	items       map[string]player.Player
	orders      []string
	memberships map[string]map[string]struct{}
	teams       *TeamRepository
}

func NewPlayerRepository(players []player.Player, teams *TeamRepository) *PlayerRepository {
	items := make(map[string]player.Player, len(players))
	orders := make([]string, 0, len(players))
	memberships := make(map[string]map[string]struct{}, len(players))

	for _, p := range players {
		items[p.ID] = p
		orders = append(orders, p.ID)
		if len(p.TeamIDs) > 0 {
			set := make(map[string]struct{}, len(p.TeamIDs))
			for _, teamID := range p.TeamIDs {
				set[teamID] = struct{}{}
			}
			memberships[p.ID] = set
		}
	}

	return &PlayerRepository{
		items:       items,
		orders:      orders,
		memberships: memberships,
		teams:       teams,
	}
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) (player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.TeamIDs = nil
	r.items[p.ID] = p
	r.orders = append(r.orders, p.ID)

	return p, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[id]
	if !ok {
		return player.Player{}, false, nil
	}

	return r.withTeamIDs(p), true, nil
}

func (r *PlayerRepository) List(_ context.Context, f player.Filter) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.orders))
	for _, id := range r.orders {
		p := r.withTeamIDs(r.items[id])
		if f.TeamID != "" {
			if _, member := r.memberships[p.ID][f.TeamID]; !member {
				continue
			}
		}
		if f.Position != "" && p.Position != f.Position {
			continue
		}
		if f.Active != nil && p.IsActive != *f.Active {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}

func (r *PlayerRepository) Update(_ context.Context, id string, p player.Patch) (player.Player, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[id]
	if !ok {
		return player.Player{}, false, nil
	}

	if p.Name != nil {
		existing.Name = *p.Name
	}
	if p.Position != nil {
		existing.Position = *p.Position
	}
	if p.IsActive != nil {
		existing.IsActive = *p.IsActive
	}
	r.items[id] = existing

	return r.withTeamIDs(existing), true, nil
}

func (r *PlayerRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return nil
	}

	delete(r.items, id)
	delete(r.memberships, id)
	for i, existing := range r.orders {
		if existing == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			break
		}
	}

	return nil
}

func (r *PlayerRepository) AddToTeam(ctx context.Context, playerID, teamID string, maxTeamsPerClub int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[playerID]; !ok {
		return fmt.Errorf("add player to team: player %s does not exist", playerID)
	}

	target, found, err := r.teams.GetByID(ctx, teamID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("add player to team: team %s does not exist", teamID)
	}

	if maxTeamsPerClub >= 0 {
		sameClub := 0
		for memberTeamID := range r.memberships[playerID] {
			t, ok, err := r.teams.GetByID(ctx, memberTeamID)
			if err != nil {
				return err
			}
			if ok && t.ClubName == target.ClubName {
				sameClub++
			}
		}
		if sameClub >= maxTeamsPerClub {
			return fmt.Errorf("%w: club=%s limit=%d", clubrules.ErrRosterClubCapExceeded, target.ClubName, maxTeamsPerClub)
		}
	}

	if r.memberships[playerID] == nil {
		r.memberships[playerID] = make(map[string]struct{})
	}
	r.memberships[playerID][teamID] = struct{}{}

	return nil
}

func (r *PlayerRepository) RemoveFromTeam(_ context.Context, playerID, teamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.memberships[playerID], teamID)

	return nil
}

func (r *PlayerRepository) withTeamIDs(p player.Player) player.Player {
	set := r.memberships[p.ID]
	if len(set) == 0 {
		p.TeamIDs = nil
		return p
	}

	teamIDs := make([]string, 0, len(set))
	for teamID := range set {
		teamIDs = append(teamIDs, teamID)
	}
	sort.Strings(teamIDs)
	p.TeamIDs = teamIDs

	return p
}
