package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/teamtally/clubdesk/internal/domain/clubrules"
	"github.com/teamtally/clubdesk/internal/domain/team"
	qb "github.com/teamtally/clubdesk/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) (team.Team, error) {
	query, args, err := qb.InsertModel("teams", teamInsertModelFrom(t), "RETURNING *")
	if err != nil {
		return team.Team{}, fmt.Errorf("build create team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	return teamFromRow(row), nil
}

// CreateOwned inserts the team while holding a lock on the owner's user row,
// so the active-team count cannot change between the quota check and the
// insert. maxTeams < 0 skips the quota entirely.
func (r *TeamRepository) CreateOwned(ctx context.Context, t team.Team, maxTeams int) (team.Team, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return team.Team{}, fmt.Errorf("begin tx create owned team: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	lockQuery, lockArgs, err := qb.Select("id").From("users").
		Where(qb.Eq("id", t.OwnerUserID)).
		ForUpdate().
		ToSQL()
	if err != nil {
		return team.Team{}, fmt.Errorf("build lock owner query: %w", err)
	}
	var ownerID string
	if err := tx.GetContext(ctx, &ownerID, lockQuery, lockArgs...); err != nil {
		if isNotFound(err) {
			return team.Team{}, fmt.Errorf("create owned team: owner %s does not exist", t.OwnerUserID)
		}
		return team.Team{}, fmt.Errorf("lock owner row: %w", err)
	}

	if maxTeams >= 0 {
		countQuery, countArgs, err := qb.Select("COUNT(*)").From("teams").
			Where(
				qb.Eq("owner_user_id", t.OwnerUserID),
				qb.Eq("is_active", true),
			).
			ToSQL()
		if err != nil {
			return team.Team{}, fmt.Errorf("build count active teams query: %w", err)
		}
		var active int
		if err := tx.GetContext(ctx, &active, countQuery, countArgs...); err != nil {
			return team.Team{}, fmt.Errorf("count active teams: %w", err)
		}
		if active >= maxTeams {
			return team.Team{}, fmt.Errorf("%w: limit=%d active=%d", clubrules.ErrPlanQuotaExceeded, maxTeams, active)
		}
	}

	insertQuery, insertArgs, err := qb.InsertModel("teams", teamInsertModelFrom(t), "RETURNING *")
	if err != nil {
		return team.Team{}, fmt.Errorf("build create owned team query: %w", err)
	}
	var row teamTableModel
	if err := tx.GetContext(ctx, &row, insertQuery, insertArgs...); err != nil {
		return team.Team{}, fmt.Errorf("create owned team: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return team.Team{}, fmt.Errorf("commit create owned team tx: %w", err)
	}

	return teamFromRow(row), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id string) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team by id query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team by id: %w", err)
	}

	return teamFromRow(row), true, nil
}

func (r *TeamRepository) List(ctx context.Context, f team.Filter) ([]team.Team, error) {
	conds := make([]qb.Condition, 0, 4)
	if f.OwnerUserID != "" {
		conds = append(conds, qb.Eq("owner_user_id", f.OwnerUserID))
	}
	if f.DivisionID != "" {
		conds = append(conds, qb.Eq("division_id", f.DivisionID))
	}
	if f.ClubName != "" {
		conds = append(conds, qb.Eq("club_name", f.ClubName))
	}
	if f.Active != nil {
		conds = append(conds, qb.Eq("is_active", *f.Active))
	}

	query, args, err := qb.Select("*").From("teams").
		Where(conds...).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}

	return out, nil
}

func (r *TeamRepository) Update(ctx context.Context, id string, p team.Patch) (team.Team, bool, error) {
	if p.Empty() {
		return r.GetByID(ctx, id)
	}

	b := qb.Update("teams")
	if p.Name != nil {
		b.Set("name", *p.Name)
	}
	if p.ClubName != nil {
		b.Set("club_name", *p.ClubName)
	}
	if p.DivisionID != nil {
		b.Set("division_id", *p.DivisionID)
	}
	if p.MaxPlayers != nil {
		b.Set("max_players", *p.MaxPlayers)
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
		return team.Team{}, false, fmt.Errorf("build update team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("update team: %w", err)
	}

	return teamFromRow(row), true, nil
}

func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom("teams").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete team query: %w", err)
	}

	// Deleting an absent id is a no-op, not an error.
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}

	return nil
}

func (r *TeamRepository) CountActiveByOwner(ctx context.Context, ownerUserID string) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("teams").
		Where(
			qb.Eq("owner_user_id", ownerUserID),
			qb.Eq("is_active", true),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count active teams query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count active teams by owner: %w", err)
	}

	return count, nil
}
