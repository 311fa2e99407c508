package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/teamtally/clubdesk/internal/domain/division"
	qb "github.com/teamtally/clubdesk/internal/platform/querybuilder"
)

type DivisionRepository struct {
	db *sqlx.DB
}

func NewDivisionRepository(db *sqlx.DB) *DivisionRepository {
	return &DivisionRepository{db: db}
}

func (r *DivisionRepository) Create(ctx context.Context, d division.Division) (division.Division, error) {
	query, args, err := qb.InsertModel("divisions", divisionInsertModelFrom(d), "RETURNING *")
	if err != nil {
		return division.Division{}, fmt.Errorf("build create division query: %w", err)
	}

	var row divisionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return division.Division{}, fmt.Errorf("create division: %w", err)
	}

	return divisionFromRow(row), nil
}

func (r *DivisionRepository) GetByID(ctx context.Context, id string) (division.Division, bool, error) {
	query, args, err := qb.Select("*").From("divisions").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return division.Division{}, false, fmt.Errorf("build get division by id query: %w", err)
	}

	var row divisionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return division.Division{}, false, nil
		}
		return division.Division{}, false, fmt.Errorf("get division by id: %w", err)
	}

	return divisionFromRow(row), true, nil
}

func (r *DivisionRepository) List(ctx context.Context, f division.Filter) ([]division.Division, error) {
	conds := make([]qb.Condition, 0, 2)
	if f.Gender != "" {
		conds = append(conds, qb.Eq("gender", string(f.Gender)))
	}
	if f.Category != "" {
		conds = append(conds, qb.Eq("category", f.Category))
	}

	query, args, err := qb.Select("*").From("divisions").
		Where(conds...).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list divisions query: %w", err)
	}

	var rows []divisionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list divisions: %w", err)
	}

	out := make([]division.Division, 0, len(rows))
	for _, row := range rows {
		out = append(out, divisionFromRow(row))
	}

	return out, nil
}

func (r *DivisionRepository) Update(ctx context.Context, id string, p division.Patch) (division.Division, bool, error) {
	if p.Empty() {
		return r.GetByID(ctx, id)
	}

	b := qb.Update("divisions")
	if p.Name != nil {
		b.Set("name", *p.Name)
	}
	if p.Gender != nil {
		b.Set("gender", string(*p.Gender))
	}
	if p.Category != nil {
		b.Set("category", *p.Category)
	}
	if p.AgeMin != nil {
		b.Set("age_min", *p.AgeMin)
	}
	if p.AgeMax != nil {
		b.Set("age_max", *p.AgeMax)
	}
	query, args, err := b.
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", id)).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return division.Division{}, false, fmt.Errorf("build update division query: %w", err)
	}

	var row divisionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return division.Division{}, false, nil
		}
		return division.Division{}, false, fmt.Errorf("update division: %w", err)
	}

	return divisionFromRow(row), true, nil
}

func (r *DivisionRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom("divisions").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete division query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete division: %w", err)
	}

	return nil
}
