package memory

import (
	"context"
	"sync"

	"github.com/teamtally/clubdesk/internal/domain/payment"
)

type PaymentRepository struct {
	mu     sync.RWMutex
	items  map[string]payment.Payment
	orders []string
}

func NewPaymentRepository(payments []payment.Payment) *PaymentRepository {
	items := make(map[string]payment.Payment, len(payments))
	orders := make([]string, 0, len(payments))

	for _, p := range payments {
		items[p.ID] = p
		orders = append(orders, p.ID)
	}

	return &PaymentRepository{
		items:  items,
		orders: orders,
	}
}

func (r *PaymentRepository) Create(_ context.Context, p payment.Payment) (payment.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[p.ID] = p
	r.orders = append(r.orders, p.ID)

	return p, nil
}

func (r *PaymentRepository) GetByID(_ context.Context, id string) (payment.Payment, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[id]
	if !ok {
		return payment.Payment{}, false, nil
	}

	return p, true, nil
}

func (r *PaymentRepository) List(_ context.Context, f payment.Filter) ([]payment.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]payment.Payment, 0, len(r.orders))
	for _, id := range r.orders {
		p := r.items[id]
		if f.UserID != "" && p.UserID != f.UserID {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}

func (r *PaymentRepository) Update(_ context.Context, id string, p payment.Patch) (payment.Payment, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[id]
	if !ok {
		return payment.Payment{}, false, nil
	}

	if p.AmountCents != nil {
		existing.AmountCents = *p.AmountCents
	}
	if p.DueAt != nil {
		existing.DueAt = *p.DueAt
	}
	if p.PaidAt != nil {
		paidAt := *p.PaidAt
		existing.PaidAt = &paidAt
	}
	if p.Status != nil {
		existing.Status = *p.Status
	}
	r.items[id] = existing

	return existing, true, nil
}

func (r *PaymentRepository) Delete(_ context.Context, id string) error {
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
