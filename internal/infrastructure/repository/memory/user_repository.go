package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/teamtally/clubdesk/internal/domain/user"
)

type UserRepository struct {
	mu     sync.RWMutex
	items  map[string]user.User
	orders []string
}

func NewUserRepository(users []user.User) *UserRepository {
	items := make(map[string]user.User, len(users))
	orders := make([]string, 0, len(users))

	for _, u := range users {
		items[u.ID] = u
		orders = append(orders, u.ID)
	}

	return &UserRepository{
		items:  items,
		orders: orders,
	}
}

func (r *UserRepository) Create(_ context.Context, u user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.Email == u.Email {
			return user.User{}, fmt.Errorf("%w: %s", user.ErrEmailTaken, u.Email)
		}
	}

	r.items[u.ID] = u
	r.orders = append(r.orders, u.ID)

	return u, nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.items[id]
	if !ok {
		return user.User{}, false, nil
	}

	return u, true, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.orders {
		if r.items[id].Email == email {
			return r.items[id], true, nil
		}
	}

	return user.User{}, false, nil
}

func (r *UserRepository) List(_ context.Context, f user.Filter) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]user.User, 0, len(r.orders))
	for _, id := range r.orders {
		u := r.items[id]
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		if f.Plan != "" && u.Plan != f.Plan {
			continue
		}
		if f.Active != nil && u.IsActive != *f.Active {
			continue
		}
		out = append(out, u)
	}

	return out, nil
}

func (r *UserRepository) Update(_ context.Context, id string, p user.Patch) (user.User, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.items[id]
	if !ok {
		return user.User{}, false, nil
	}

	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Plan != nil {
		u.Plan = *p.Plan
	}
	if p.IsActive != nil {
		u.IsActive = *p.IsActive
	}
	r.items[id] = u

	return u, true, nil
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
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
