package formation

import "context"

// Repository persists formations together with their position slots; the
// position rows never leave this boundary unassembled.
type Repository interface {
	Create(ctx context.Context, f Formation) (Formation, error)
	GetByID(ctx context.Context, id string) (Formation, bool, error)
	List(ctx context.Context, f Filter) ([]Formation, error)
	Update(ctx context.Context, id string, p Patch) (Formation, bool, error)
	Delete(ctx context.Context, id string) error
}
