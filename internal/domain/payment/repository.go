package payment

import "context"

type Repository interface {
	Create(ctx context.Context, p Payment) (Payment, error)
	GetByID(ctx context.Context, id string) (Payment, bool, error)
	List(ctx context.Context, f Filter) ([]Payment, error)
	Update(ctx context.Context, id string, patch Patch) (Payment, bool, error)
	Delete(ctx context.Context, id string) error
}
