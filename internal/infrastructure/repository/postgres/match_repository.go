package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/teamtally/clubdesk/internal/domain/match"
	qb "github.com/teamtally/clubdesk/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) (match.Match, error) {
	query, args, err := qb.InsertModel("matches", matchInsertModelFrom(m), "RETURNING *")
	if err != nil {
		return match.Match{}, fmt.Errorf("build create match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}

	return matchFromRow(row), nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match by id: %w", err)
	}

	return matchFromRow(row), true, nil
}

func (r *MatchRepository) List(ctx context.Context, f match.Filter) ([]match.Match, error) {
	conds := make([]qb.Condition, 0, 2)
	if f.TeamID != "" {
		conds = append(conds, qb.Eq("team_id", f.TeamID))
	}
	if f.Status != "" {
		conds = append(conds, qb.Eq("status", string(f.Status)))
	}

	query, args, err := qb.Select("*").From("matches").
		Where(conds...).
		OrderBy("kickoff_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}

	return out, nil
}

func (r *MatchRepository) Update(ctx context.Context, id string, p match.Patch) (match.Match, bool, error) {
	if p.Empty() {
		return r.GetByID(ctx, id)
	}

	b := qb.Update("matches")
	if p.Opponent != nil {
		b.Set("opponent", *p.Opponent)
	}
	if p.KickoffAt != nil {
		b.Set("kickoff_at", *p.KickoffAt)
	}
	if p.Venue != nil {
		b.Set("venue", string(*p.Venue))
	}
	if p.GoalsFor != nil {
		b.Set("goals_for", *p.GoalsFor)
	}
	if p.GoalsAgainst != nil {
		b.Set("goals_against", *p.GoalsAgainst)
	}
	if p.Status != nil {
		b.Set("status", string(*p.Status))
	}
	query, args, err := b.
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", id)).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build update match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("update match: %w", err)
	}

	return matchFromRow(row), true, nil
}

func (r *MatchRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom("matches").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete match query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}

	return nil
}
