package division

import "context"

type Repository interface {
	Create(ctx context.Context, d Division) (Division, error)
	GetByID(ctx context.Context, id string) (Division, bool, error)
	List(ctx context.Context, f Filter) ([]Division, error)
	Update(ctx context.Context, id string, p Patch) (Division, bool, error)
	Delete(ctx context.Context, id string) error
}
