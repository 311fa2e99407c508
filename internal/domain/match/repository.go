package match

import "context"

type Repository interface {
	Create(ctx context.Context, m Match) (Match, error)
	GetByID(ctx context.Context, id string) (Match, bool, error)
	List(ctx context.Context, f Filter) ([]Match, error)
	Update(ctx context.Context, id string, p Patch) (Match, bool, error)
	Delete(ctx context.Context, id string) error
}
