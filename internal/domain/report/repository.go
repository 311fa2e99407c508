package report

import "context"

type Repository interface {
	Create(ctx context.Context, r Report) (Report, error)
	GetByID(ctx context.Context, id string) (Report, bool, error)
	List(ctx context.Context, f Filter) ([]Report, error)
	Update(ctx context.Context, id string, p Patch) (Report, bool, error)
	Delete(ctx context.Context, id string) error
}
