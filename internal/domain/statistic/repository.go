package statistic

import "context"

type Repository interface {
	Create(ctx context.Context, s Statistic) (Statistic, error)
	GetByID(ctx context.Context, id string) (Statistic, bool, error)
	List(ctx context.Context, f Filter) ([]Statistic, error)
	Update(ctx context.Context, id string, p Patch) (Statistic, bool, error)
	Delete(ctx context.Context, id string) error
	SummarizeSeason(ctx context.Context, playerID, season string) (SeasonSummary, bool, error)
}
