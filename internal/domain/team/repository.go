package team

import "context"

// Repository describes team persistence needs from use cases.
//
// CreateOwned is the transactional variant of Create: it locks the owner
// row, re-counts the owner's active teams and inserts only while the count
// stays below maxTeams. It fails with clubrules.ErrPlanQuotaExceeded when
// the quota is already used up, closing the race between the quota check
// and the insert under concurrent requests. maxTeams < 0 means unlimited.
type Repository interface {
	Create(ctx context.Context, t Team) (Team, error)
	CreateOwned(ctx context.Context, t Team, maxTeams int) (Team, error)
	GetByID(ctx context.Context, id string) (Team, bool, error)
	List(ctx context.Context, f Filter) ([]Team, error)
	Update(ctx context.Context, id string, p Patch) (Team, bool, error)
	Delete(ctx context.Context, id string) error
	CountActiveByOwner(ctx context.Context, ownerUserID string) (int, error)
}
