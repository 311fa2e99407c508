package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/teamtally/clubdesk/internal/domain/statistic"
	qb "github.com/teamtally/clubdesk/internal/platform/querybuilder"
)

type StatisticRepository struct {
	db *sqlx.DB
}

func NewStatisticRepository(db *sqlx.DB) *StatisticRepository {
	return &StatisticRepository{db: db}
}

func (r *StatisticRepository) Create(ctx context.Context, s statistic.Statistic) (statistic.Statistic, error) {
	query, args, err := qb.InsertModel("statistics", statisticInsertModelFrom(s), "RETURNING *")
	if err != nil {
		return statistic.Statistic{}, fmt.Errorf("build create statistic query: %w", err)
	}

	var row statisticTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return statistic.Statistic{}, fmt.Errorf("create statistic: %w", err)
	}

	return statisticFromRow(row), nil
}

func (r *StatisticRepository) GetByID(ctx context.Context, id string) (statistic.Statistic, bool, error) {
	query, args, err := qb.Select("*").From("statistics").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return statistic.Statistic{}, false, fmt.Errorf("build get statistic by id query: %w", err)
	}

	var row statisticTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return statistic.Statistic{}, false, nil
		}
		return statistic.Statistic{}, false, fmt.Errorf("get statistic by id: %w", err)
	}

	return statisticFromRow(row), true, nil
}

func (r *StatisticRepository) List(ctx context.Context, f statistic.Filter) ([]statistic.Statistic, error) {
	conds := make([]qb.Condition, 0, 2)
	if f.PlayerID != "" {
		conds = append(conds, qb.Eq("player_id", f.PlayerID))
	}
	if f.Season != "" {
		conds = append(conds, qb.Eq("season", f.Season))
	}

	query, args, err := qb.Select("*").From("statistics").
		Where(conds...).
		OrderBy("season", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list statistics query: %w", err)
	}

	var rows []statisticTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list statistics: %w", err)
	}

	out := make([]statistic.Statistic, 0, len(rows))
	for _, row := range rows {
		out = append(out, statisticFromRow(row))
	}

	return out, nil
}

func (r *StatisticRepository) Update(ctx context.Context, id string, p statistic.Patch) (statistic.Statistic, bool, error) {
	if p.Empty() {
		return r.GetByID(ctx, id)
	}

	b := qb.Update("statistics")
	if p.MatchesPlayed != nil {
		b.Set("matches_played", *p.MatchesPlayed)
	}
	if p.Goals != nil {
		b.Set("goals", *p.Goals)
	}
	if p.Assists != nil {
		b.Set("assists", *p.Assists)
	}
	if p.Minutes != nil {
		b.Set("minutes", *p.Minutes)
	}
	query, args, err := b.
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", id)).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return statistic.Statistic{}, false, fmt.Errorf("build update statistic query: %w", err)
	}

	var row statisticTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return statistic.Statistic{}, false, nil
		}
		return statistic.Statistic{}, false, fmt.Errorf("update statistic: %w", err)
	}

	return statisticFromRow(row), true, nil
}

func (r *StatisticRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom("statistics").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete statistic query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete statistic: %w", err)
	}

	return nil
}

// SummarizeSeason aggregates every statistics row a player has for the season.
// The false return means the player has no rows for that season at all.
func (r *StatisticRepository) SummarizeSeason(ctx context.Context, playerID, season string) (statistic.SeasonSummary, bool, error) {
	query, args, err := qb.Select(
		"COUNT(*) AS rows_found",
		"COALESCE(SUM(matches_played), 0) AS matches_played",
		"COALESCE(SUM(goals), 0) AS goals",
		"COALESCE(SUM(assists), 0) AS assists",
		"COALESCE(SUM(minutes), 0) AS minutes",
	).
		From("statistics").
		Where(
			qb.Eq("player_id", playerID),
			qb.Eq("season", season),
		).
		ToSQL()
	if err != nil {
		return statistic.SeasonSummary{}, false, fmt.Errorf("build summarize season query: %w", err)
	}

	var row struct {
		RowsFound     int `db:"rows_found"`
		MatchesPlayed int `db:"matches_played"`
		Goals         int `db:"goals"`
		Assists       int `db:"assists"`
		Minutes       int `db:"minutes"`
	}
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return statistic.SeasonSummary{}, false, fmt.Errorf("summarize season: %w", err)
	}
	if row.RowsFound == 0 {
		return statistic.SeasonSummary{}, false, nil
	}

	return statistic.SeasonSummary{
		PlayerID:      playerID,
		Season:        season,
		MatchesPlayed: row.MatchesPlayed,
		Goals:         row.Goals,
		Assists:       row.Assists,
		Minutes:       row.Minutes,
	}, true, nil
}
