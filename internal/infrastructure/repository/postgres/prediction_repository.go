package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/teamtally/clubdesk/internal/domain/prediction"
	qb "github.com/teamtally/clubdesk/internal/platform/querybuilder"
)

type PredictionRepository struct {
	db *sqlx.DB
}

func NewPredictionRepository(db *sqlx.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

func (r *PredictionRepository) Create(ctx context.Context, p prediction.Prediction) (prediction.Prediction, error) {
	query, args, err := qb.InsertModel("predictions", predictionInsertModelFrom(p), "RETURNING *")
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("build create prediction query: %w", err)
	}

	var row predictionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return prediction.Prediction{}, fmt.Errorf("create prediction: %w", err)
	}

	return predictionFromRow(row), nil
}

func (r *PredictionRepository) GetByID(ctx context.Context, id string) (prediction.Prediction, bool, error) {
	query, args, err := qb.Select("*").From("predictions").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return prediction.Prediction{}, false, fmt.Errorf("build get prediction by id query: %w", err)
	}

	var row predictionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return prediction.Prediction{}, false, nil
		}
		return prediction.Prediction{}, false, fmt.Errorf("get prediction by id: %w", err)
	}

	return predictionFromRow(row), true, nil
}

func (r *PredictionRepository) List(ctx context.Context, f prediction.Filter) ([]prediction.Prediction, error) {
	conds := make([]qb.Condition, 0, 1)
	if f.MatchID != "" {
		conds = append(conds, qb.Eq("match_id", f.MatchID))
	}

	query, args, err := qb.Select("*").From("predictions").
		Where(conds...).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list predictions query: %w", err)
	}

	var rows []predictionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}

	out := make([]prediction.Prediction, 0, len(rows))
	for _, row := range rows {
		out = append(out, predictionFromRow(row))
	}

	return out, nil
}

func (r *PredictionRepository) Update(ctx context.Context, id string, p prediction.Patch) (prediction.Prediction, bool, error) {
	if p.Empty() {
		return r.GetByID(ctx, id)
	}

	b := qb.Update("predictions")
	if p.PredictedFor != nil {
		b.Set("predicted_for", *p.PredictedFor)
	}
	if p.PredictedAgst != nil {
		b.Set("predicted_against", *p.PredictedAgst)
	}
	if p.Confidence != nil {
		b.Set("confidence", *p.Confidence)
	}
	query, args, err := b.
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", id)).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return prediction.Prediction{}, false, fmt.Errorf("build update prediction query: %w", err)
	}

	var row predictionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return prediction.Prediction{}, false, nil
		}
		return prediction.Prediction{}, false, fmt.Errorf("update prediction: %w", err)
	}

	return predictionFromRow(row), true, nil
}

func (r *PredictionRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom("predictions").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete prediction query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete prediction: %w", err)
	}

	return nil
}
