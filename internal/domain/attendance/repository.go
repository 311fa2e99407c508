package attendance

import "context"

type Repository interface {
	Create(ctx context.Context, r Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, bool, error)
	List(ctx context.Context, f Filter) ([]Record, error)
	Update(ctx context.Context, id string, p Patch) (Record, bool, error)
	Delete(ctx context.Context, id string) error
}
