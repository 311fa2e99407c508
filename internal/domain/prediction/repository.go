package prediction

import "context"

type Repository interface {
	Create(ctx context.Context, p Prediction) (Prediction, error)
	GetByID(ctx context.Context, id string) (Prediction, bool, error)
	List(ctx context.Context, f Filter) ([]Prediction, error)
	Update(ctx context.Context, id string, patch Patch) (Prediction, bool, error)
	Delete(ctx context.Context, id string) error
}
