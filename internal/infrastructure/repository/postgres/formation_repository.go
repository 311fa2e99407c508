package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/teamtally/clubdesk/internal/domain/formation"
	qb "github.com/teamtally/clubdesk/internal/platform/querybuilder"
)

// FormationRepository stores formations across two tables; the position slots
// live in formation_positions and are replaced wholesale on update.
type FormationRepository struct {
	db *sqlx.DB
}

func NewFormationRepository(db *sqlx.DB) *FormationRepository {
	return &FormationRepository{db: db}
}

func (r *FormationRepository) Create(ctx context.Context, f formation.Formation) (formation.Formation, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return formation.Formation{}, fmt.Errorf("begin tx create formation: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.InsertModel("formations", formationInsertModelFrom(f), "RETURNING *")
	if err != nil {
		return formation.Formation{}, fmt.Errorf("build create formation query: %w", err)
	}
	var row formationTableModel
	if err := tx.GetContext(ctx, &row, query, args...); err != nil {
		return formation.Formation{}, fmt.Errorf("create formation: %w", err)
	}

	if err := insertPositions(ctx, tx, row.ID, f.Positions); err != nil {
		return formation.Formation{}, err
	}

	if err := tx.Commit(); err != nil {
		return formation.Formation{}, fmt.Errorf("commit create formation tx: %w", err)
	}

	return formationFromRow(row, f.Positions), nil
}

func (r *FormationRepository) GetByID(ctx context.Context, id string) (formation.Formation, bool, error) {
	query, args, err := qb.Select("*").From("formations").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return formation.Formation{}, false, fmt.Errorf("build get formation by id query: %w", err)
	}

	var row formationTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return formation.Formation{}, false, nil
		}
		return formation.Formation{}, false, fmt.Errorf("get formation by id: %w", err)
	}

	positions, err := r.positionsByFormation(ctx, row.ID)
	if err != nil {
		return formation.Formation{}, false, err
	}

	return formationFromRow(row, positions), true, nil
}

func (r *FormationRepository) List(ctx context.Context, f formation.Filter) ([]formation.Formation, error) {
	conds := make([]qb.Condition, 0, 1)
	if f.MatchID != "" {
		conds = append(conds, qb.Eq("match_id", f.MatchID))
	}

	query, args, err := qb.Select("*").From("formations").
		Where(conds...).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list formations query: %w", err)
	}

	var rows []formationTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list formations: %w", err)
	}

	out := make([]formation.Formation, 0, len(rows))
	for _, row := range rows {
		positions, err := r.positionsByFormation(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, formationFromRow(row, positions))
	}

	return out, nil
}

func (r *FormationRepository) Update(ctx context.Context, id string, p formation.Patch) (formation.Formation, bool, error) {
	if p.Empty() {
		return r.GetByID(ctx, id)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return formation.Formation{}, false, fmt.Errorf("begin tx update formation: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	b := qb.Update("formations")
	if p.Shape != nil {
		b.Set("shape", *p.Shape)
	}
	query, args, err := b.
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", id)).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return formation.Formation{}, false, fmt.Errorf("build update formation query: %w", err)
	}

	var row formationTableModel
	if err := tx.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return formation.Formation{}, false, nil
		}
		return formation.Formation{}, false, fmt.Errorf("update formation: %w", err)
	}

	if p.Positions != nil {
		deleteQuery, deleteArgs, err := qb.DeleteFrom("formation_positions").
			Where(qb.Eq("formation_id", id)).
			ToSQL()
		if err != nil {
			return formation.Formation{}, false, fmt.Errorf("build clear formation positions query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return formation.Formation{}, false, fmt.Errorf("clear formation positions: %w", err)
		}
		if err := insertPositions(ctx, tx, id, *p.Positions); err != nil {
			return formation.Formation{}, false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return formation.Formation{}, false, fmt.Errorf("commit update formation tx: %w", err)
	}

	positions, err := r.positionsByFormation(ctx, id)
	if err != nil {
		return formation.Formation{}, false, err
	}

	return formationFromRow(row, positions), true, nil
}

func (r *FormationRepository) Delete(ctx context.Context, id string) error {
	// formation_positions rows cascade with the parent.
	query, args, err := qb.DeleteFrom("formations").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete formation query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete formation: %w", err)
	}

	return nil
}

func insertPositions(ctx context.Context, tx *sqlx.Tx, formationID string, positions []formation.Position) error {
	if len(positions) == 0 {
		return nil
	}

	b := qb.InsertInto("formation_positions").
		Columns("formation_id", "slot", "role", "player_id")
	for _, pos := range positions {
		b.Values(formationID, pos.Slot, pos.Role, pos.PlayerID)
	}
	query, args, err := b.ToSQL()
	if err != nil {
		return fmt.Errorf("build insert formation positions query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert formation positions: %w", err)
	}

	return nil
}

func (r *FormationRepository) positionsByFormation(ctx context.Context, formationID string) ([]formation.Position, error) {
	query, args, err := qb.Select("formation_id", "slot", "role", "player_id").
		From("formation_positions").
		Where(qb.Eq("formation_id", formationID)).
		OrderBy("slot").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list formation positions query: %w", err)
	}

	var rows []formationPositionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list formation positions: %w", err)
	}

	out := make([]formation.Position, 0, len(rows))
	for _, row := range rows {
		out = append(out, positionFromRow(row))
	}

	return out, nil
}
