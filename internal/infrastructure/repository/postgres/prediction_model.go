package postgres

import (
	"time"

	"github.com/teamtally/clubdesk/internal/domain/prediction"
)

type predictionTableModel struct {
	ID            string    `db:"id"`
	MatchID       string    `db:"match_id"`
	PredictedFor  int       `db:"predicted_for"`
	PredictedAgst int       `db:"predicted_against"`
	Confidence    float64   `db:"confidence"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func predictionInsertModelFrom(p prediction.Prediction) predictionTableModel {
	return predictionTableModel{
		ID:            p.ID,
		MatchID:       p.MatchID,
		PredictedFor:  p.PredictedFor,
		PredictedAgst: p.PredictedAgst,
		Confidence:    p.Confidence,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func predictionFromRow(row predictionTableModel) prediction.Prediction {
	return prediction.Prediction{
		ID:            row.ID,
		MatchID:       row.MatchID,
		PredictedFor:  row.PredictedFor,
		PredictedAgst: row.PredictedAgst,
		Confidence:    row.Confidence,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
