package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/teamtally/clubdesk/internal/domain/clubrules"
	"github.com/teamtally/clubdesk/internal/domain/player"
	qb "github.com/teamtally/clubdesk/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (player.Player, error) {
	query, args, err := qb.InsertModel("players", playerInsertModelFrom(p), "RETURNING *")
	if err != nil {
		return player.Player{}, fmt.Errorf("build create player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	return playerFromRow(row, nil), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player by id query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player by id: %w", err)
	}

	teamIDs, err := r.teamIDsByPlayer(ctx, []string{row.ID})
	if err != nil {
		return player.Player{}, false, err
	}

	return playerFromRow(row, teamIDs[row.ID]), true, nil
}

func (r *PlayerRepository) List(ctx context.Context, f player.Filter) ([]player.Player, error) {
	conds := make([]qb.Condition, 0, 3)
	if f.TeamID != "" {
		conds = append(conds, qb.Expr("id IN (SELECT player_id FROM team_players WHERE team_id = ?)", f.TeamID))
	}
	if f.Position != "" {
		conds = append(conds, qb.Eq("position", string(f.Position)))
	}
	if f.Active != nil {
		conds = append(conds, qb.Eq("is_active", *f.Active))
	}

	query, args, err := qb.Select("*").From("players").
		Where(conds...).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	if len(rows) == 0 {
		return []player.Player{}, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	teamIDs, err := r.teamIDsByPlayer(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row, teamIDs[row.ID]))
	}

	return out, nil
}

func (r *PlayerRepository) Update(ctx context.Context, id string, p player.Patch) (player.Player, bool, error) {
	if p.Empty() {
		return r.GetByID(ctx, id)
	}

	b := qb.Update("players")
	if p.Name != nil {
		b.Set("name", *p.Name)
	}
	if p.Position != nil {
		b.Set("position", string(*p.Position))
	}
	if p.IsActive != nil {
		b.Set("is_active", *p.IsActive)
	}
	query, args, err := b.
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", id)).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build update player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("update player: %w", err)
	}

	teamIDs, err := r.teamIDsByPlayer(ctx, []string{row.ID})
	if err != nil {
		return player.Player{}, false, err
	}

	return playerFromRow(row, teamIDs[row.ID]), true, nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom("players").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	return nil
}

// AddToTeam records the membership while holding a lock on the player row, so
// concurrent adds cannot both pass the same-club count. maxTeamsPerClub < 0
// skips the cap.
func (r *PlayerRepository) AddToTeam(ctx context.Context, playerID, teamID string, maxTeamsPerClub int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx add player to team: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	lockQuery, lockArgs, err := qb.Select("id").From("players").
		Where(qb.Eq("id", playerID)).
		ForUpdate().
		ToSQL()
	if err != nil {
		return fmt.Errorf("build lock player query: %w", err)
	}
	var lockedID string
	if err := tx.GetContext(ctx, &lockedID, lockQuery, lockArgs...); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("add player to team: player %s does not exist", playerID)
		}
		return fmt.Errorf("lock player row: %w", err)
	}

	clubQuery, clubArgs, err := qb.Select("club_name").From("teams").
		Where(qb.Eq("id", teamID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build get team club query: %w", err)
	}
	var clubName string
	if err := tx.GetContext(ctx, &clubName, clubQuery, clubArgs...); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("add player to team: team %s does not exist", teamID)
		}
		return fmt.Errorf("get team club: %w", err)
	}

	if maxTeamsPerClub >= 0 {
		countQuery, countArgs, err := qb.Select("COUNT(*)").
			From("team_players tp JOIN teams t ON t.id = tp.team_id").
			Where(
				qb.Eq("tp.player_id", playerID),
				qb.Eq("t.club_name", clubName),
			).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build count club memberships query: %w", err)
		}
		var memberships int
		if err := tx.GetContext(ctx, &memberships, countQuery, countArgs...); err != nil {
			return fmt.Errorf("count club memberships: %w", err)
		}
		if memberships >= maxTeamsPerClub {
			return fmt.Errorf("%w: club=%s limit=%d", clubrules.ErrRosterClubCapExceeded, clubName, maxTeamsPerClub)
		}
	}

	insertQuery, insertArgs, err := qb.InsertInto("team_players").
		Columns("team_id", "player_id").
		Values(teamID, playerID).
		Suffix("ON CONFLICT (team_id, player_id) DO NOTHING").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build add player to team query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("add player to team: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit add player to team tx: %w", err)
	}

	return nil
}

func (r *PlayerRepository) RemoveFromTeam(ctx context.Context, playerID, teamID string) error {
	query, args, err := qb.DeleteFrom("team_players").
		Where(
			qb.Eq("player_id", playerID),
			qb.Eq("team_id", teamID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build remove player from team query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("remove player from team: %w", err)
	}

	return nil
}

func (r *PlayerRepository) teamIDsByPlayer(ctx context.Context, playerIDs []string) (map[string][]string, error) {
	values := make([]any, 0, len(playerIDs))
	for _, id := range playerIDs {
		values = append(values, id)
	}

	query, args, err := qb.Select("player_id", "team_id").From("team_players").
		Where(qb.In("player_id", values)).
		OrderBy("team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list team memberships query: %w", err)
	}

	var rows []struct {
		PlayerID string `db:"player_id"`
		TeamID   string `db:"team_id"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list team memberships: %w", err)
	}

	out := make(map[string][]string, len(playerIDs))
	for _, row := range rows {
		out[row.PlayerID] = append(out[row.PlayerID], row.TeamID)
	}

	return out, nil
}
