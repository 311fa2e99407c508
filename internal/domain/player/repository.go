package player

import "context"

// Repository describes player persistence needs from use cases.
//
// AddToTeam inserts a membership row inside a transaction that counts the
// player's existing teams within the same club; when the count has already
// reached maxTeamsPerClub it fails with clubrules.ErrRosterClubCapExceeded.
type Repository interface {
	Create(ctx context.Context, p Player) (Player, error)
	GetByID(ctx context.Context, id string) (Player, bool, error)
	List(ctx context.Context, f Filter) ([]Player, error)
	Update(ctx context.Context, id string, patch Patch) (Player, bool, error)
	Delete(ctx context.Context, id string) error
	AddToTeam(ctx context.Context, playerID, teamID string, maxTeamsPerClub int) error
	RemoveFromTeam(ctx context.Context, playerID, teamID string) error
}
