package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/teamtally/clubdesk/internal/domain/prediction"
	"github.com/teamtally/clubdesk/internal/usecase"
)

type createPredictionRequest struct {
	MatchID       string  `json:"match_id" validate:"required"`
	PredictedFor  int     `json:"predicted_for" validate:"gte=0"`
	PredictedAgst int     `json:"predicted_against" validate:"gte=0"`
	Confidence    float64 `json:"confidence" validate:"gte=0,lte=1"`
}

type updatePredictionRequest struct {
	PredictedFor  *int     `json:"predicted_for" validate:"omitempty,gte=0"`
	PredictedAgst *int     `json:"predicted_against" validate:"omitempty,gte=0"`
	Confidence    *float64 `json:"confidence" validate:"omitempty,gte=0,lte=1"`
}

type predictionDTO struct {
	ID            string    `json:"id"`
	MatchID       string    `json:"match_id"`
	PredictedFor  int       `json:"predicted_for"`
	PredictedAgst int       `json:"predicted_against"`
	Confidence    float64   `json:"confidence"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func predictionToDTO(p prediction.Prediction) predictionDTO {
	return predictionDTO{
		ID:            p.ID,
		MatchID:       p.MatchID,
		PredictedFor:  p.PredictedFor,
		PredictedAgst: p.PredictedAgst,
		Confidence:    p.Confidence,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (h *Handler) CreatePrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePrediction")
	defer span.End()

	var req createPredictionRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.predictionService.CreatePrediction(ctx, usecase.CreatePredictionInput{
		MatchID:       req.MatchID,
		PredictedFor:  req.PredictedFor,
		PredictedAgst: req.PredictedAgst,
		Confidence:    req.Confidence,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create prediction failed", "match_id", req.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, predictionToDTO(created))
}

func (h *Handler) ListPredictions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPredictions")
	defer span.End()

	predictions, err := h.predictionService.ListPredictions(ctx, prediction.Filter{
		MatchID: strings.TrimSpace(r.URL.Query().Get("match_id")),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list predictions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]predictionDTO, 0, len(predictions))
	for _, p := range predictions {
		items = append(items, predictionToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPrediction")
	defer span.End()

	predictionID := strings.TrimSpace(r.PathValue("predictionID"))
	item, err := h.predictionService.GetPrediction(ctx, predictionID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, predictionToDTO(item))
}

func (h *Handler) UpdatePrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePrediction")
	defer span.End()

	predictionID := strings.TrimSpace(r.PathValue("predictionID"))
	var req updatePredictionRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.predictionService.UpdatePrediction(ctx, predictionID, prediction.Patch{
		PredictedFor:  req.PredictedFor,
		PredictedAgst: req.PredictedAgst,
		Confidence:    req.Confidence,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update prediction failed", "prediction_id", predictionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, predictionToDTO(updated))
}

func (h *Handler) DeletePrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePrediction")
	defer span.End()

	predictionID := strings.TrimSpace(r.PathValue("predictionID"))
	if err := h.predictionService.DeletePrediction(ctx, predictionID); err != nil {
		h.logger.WarnContext(ctx, "delete prediction failed", "prediction_id", predictionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(ctx, w)
}
