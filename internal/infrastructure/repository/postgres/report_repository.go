package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/teamtally/clubdesk/internal/domain/report"
	qb "github.com/teamtally/clubdesk/internal/platform/querybuilder"
)

type ReportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Create(ctx context.Context, rep report.Report) (report.Report, error) {
	query, args, err := qb.InsertModel("reports", reportInsertModelFrom(rep), "RETURNING *")
	if err != nil {
		return report.Report{}, fmt.Errorf("build create report query: %w", err)
	}

	var row reportTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return report.Report{}, fmt.Errorf("create report: %w", err)
	}

	return reportFromRow(row), nil
}

func (r *ReportRepository) GetByID(ctx context.Context, id string) (report.Report, bool, error) {
	query, args, err := qb.Select("*").From("reports").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return report.Report{}, false, fmt.Errorf("build get report by id query: %w", err)
	}

	var row reportTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return report.Report{}, false, nil
		}
		return report.Report{}, false, fmt.Errorf("get report by id: %w", err)
	}

	return reportFromRow(row), true, nil
}

func (r *ReportRepository) List(ctx context.Context, f report.Filter) ([]report.Report, error) {
	conds := make([]qb.Condition, 0, 2)
	if f.AuthorUserID != "" {
		conds = append(conds, qb.Eq("author_user_id", f.AuthorUserID))
	}
	if f.Kind != "" {
		conds = append(conds, qb.Eq("kind", string(f.Kind)))
	}

	query, args, err := qb.Select("*").From("reports").
		Where(conds...).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list reports query: %w", err)
	}

	var rows []reportTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	out := make([]report.Report, 0, len(rows))
	for _, row := range rows {
		out = append(out, reportFromRow(row))
	}

	return out, nil
}

func (r *ReportRepository) Update(ctx context.Context, id string, p report.Patch) (report.Report, bool, error) {
	if p.Empty() {
		return r.GetByID(ctx, id)
	}

	b := qb.Update("reports")
	if p.Kind != nil {
		b.Set("kind", string(*p.Kind))
	}
	if p.Title != nil {
		b.Set("title", *p.Title)
	}
	if p.Body != nil {
		b.Set("body", *p.Body)
	}
	query, args, err := b.
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", id)).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return report.Report{}, false, fmt.Errorf("build update report query: %w", err)
	}

	var row reportTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return report.Report{}, false, nil
		}
		return report.Report{}, false, fmt.Errorf("update report: %w", err)
	}

	return reportFromRow(row), true, nil
}

func (r *ReportRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom("reports").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete report query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete report: %w", err)
	}

	return nil
}
