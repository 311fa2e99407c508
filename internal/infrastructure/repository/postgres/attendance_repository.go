package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/teamtally/clubdesk/internal/domain/attendance"
	qb "github.com/teamtally/clubdesk/internal/platform/querybuilder"
)

type AttendanceRepository struct {
	db *sqlx.DB
}

func NewAttendanceRepository(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	query, args, err := qb.InsertModel("attendance_records", attendanceInsertModelFrom(rec), "RETURNING *")
	if err != nil {
		return attendance.Record{}, fmt.Errorf("build create attendance query: %w", err)
	}

	var row attendanceTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return attendance.Record{}, fmt.Errorf("create attendance: %w", err)
	}

	return attendanceFromRow(row), nil
}

func (r *AttendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, bool, error) {
	query, args, err := qb.Select("*").From("attendance_records").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return attendance.Record{}, false, fmt.Errorf("build get attendance by id query: %w", err)
	}

	var row attendanceTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return attendance.Record{}, false, nil
		}
		return attendance.Record{}, false, fmt.Errorf("get attendance by id: %w", err)
	}

	return attendanceFromRow(row), true, nil
}

func (r *AttendanceRepository) List(ctx context.Context, f attendance.Filter) ([]attendance.Record, error) {
	conds := make([]qb.Condition, 0, 3)
	if f.MatchID != "" {
		conds = append(conds, qb.Eq("match_id", f.MatchID))
	}
	if f.PlayerID != "" {
		conds = append(conds, qb.Eq("player_id", f.PlayerID))
	}
	if f.Status != "" {
		conds = append(conds, qb.Eq("status", string(f.Status)))
	}

	query, args, err := qb.Select("*").From("attendance_records").
		Where(conds...).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list attendance query: %w", err)
	}

	var rows []attendanceTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}

	out := make([]attendance.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, attendanceFromRow(row))
	}

	return out, nil
}

func (r *AttendanceRepository) Update(ctx context.Context, id string, p attendance.Patch) (attendance.Record, bool, error) {
	if p.Empty() {
		return r.GetByID(ctx, id)
	}

	b := qb.Update("attendance_records")
	if p.Status != nil {
		b.Set("status", string(*p.Status))
	}
	if p.Note != nil {
		b.Set("note", *p.Note)
	}
	query, args, err := b.
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", id)).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return attendance.Record{}, false, fmt.Errorf("build update attendance query: %w", err)
	}

	var row attendanceTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return attendance.Record{}, false, nil
		}
		return attendance.Record{}, false, fmt.Errorf("update attendance: %w", err)
	}

	return attendanceFromRow(row), true, nil
}

func (r *AttendanceRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom("attendance_records").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete attendance query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete attendance: %w", err)
	}

	return nil
}
