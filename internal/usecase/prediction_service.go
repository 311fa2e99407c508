package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/teamtally/clubdesk/internal/domain/match"
	"github.com/teamtally/clubdesk/internal/domain/prediction"
	idgen "github.com/teamtally/clubdesk/internal/platform/id"
)

// CreatePredictionInput is the incoming payload for a score forecast.
type CreatePredictionInput struct {
	MatchID       string
	PredictedFor  int
	PredictedAgst int
	Confidence    float64
}

type PredictionService struct {
	predictionRepo prediction.Repository
	matchRepo      match.Repository
	idGen          idgen.Generator
	now            func() time.Time
}

func NewPredictionService(predictionRepo prediction.Repository, matchRepo match.Repository, idGen idgen.Generator) *PredictionService {
	return &PredictionService{
		predictionRepo: predictionRepo,
		matchRepo:      matchRepo,
		idGen:          idGen,
		now:            time.Now,
	}
}

// CreatePrediction records a forecast for a match that has not been played.
func (s *PredictionService) CreatePrediction(ctx context.Context, input CreatePredictionInput) (prediction.Prediction, error) {
	input.MatchID = strings.TrimSpace(input.MatchID)
	if input.MatchID == "" {
		return prediction.Prediction{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	m, exists, err := s.matchRepo.GetByID(ctx, input.MatchID)
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return prediction.Prediction{}, notFound("Match")
	}
	if m.Status != match.StatusScheduled {
		return prediction.Prediction{}, fmt.Errorf("%w: match is not open for predictions", ErrInvalidInput)
	}

	predictionID, err := s.idGen.NewID()
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("generate prediction id: %w", err)
	}

	now := s.now().UTC()
	p := prediction.Prediction{
		ID:            predictionID,
		MatchID:       input.MatchID,
		PredictedFor:  input.PredictedFor,
		PredictedAgst: input.PredictedAgst,
		Confidence:    input.Confidence,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := p.Validate(); err != nil {
		return prediction.Prediction{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	created, err := s.predictionRepo.Create(ctx, p)
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("create prediction: %w", err)
	}

	return created, nil
}

func (s *PredictionService) GetPrediction(ctx context.Context, id string) (prediction.Prediction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return prediction.Prediction{}, fmt.Errorf("%w: prediction id is required", ErrInvalidInput)
	}

	p, exists, err := s.predictionRepo.GetByID(ctx, id)
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("get prediction: %w", err)
	}
	if !exists {
		return prediction.Prediction{}, notFound("Prediction")
	}

	return p, nil
}

func (s *PredictionService) ListPredictions(ctx context.Context, f prediction.Filter) ([]prediction.Prediction, error) {
	predictions, err := s.predictionRepo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}

	return predictions, nil
}

func (s *PredictionService) UpdatePrediction(ctx context.Context, id string, p prediction.Patch) (prediction.Prediction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return prediction.Prediction{}, fmt.Errorf("%w: prediction id is required", ErrInvalidInput)
	}
	if p.PredictedFor != nil && *p.PredictedFor < 0 {
		return prediction.Prediction{}, fmt.Errorf("%w: predicted score cannot be negative", ErrInvalidInput)
	}
	if p.PredictedAgst != nil && *p.PredictedAgst < 0 {
		return prediction.Prediction{}, fmt.Errorf("%w: predicted score cannot be negative", ErrInvalidInput)
	}
	if p.Confidence != nil && (*p.Confidence < 0 || *p.Confidence > 1) {
		return prediction.Prediction{}, fmt.Errorf("%w: confidence must be within [0,1]", ErrInvalidInput)
	}

	updated, exists, err := s.predictionRepo.Update(ctx, id, p)
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("update prediction: %w", err)
	}
	if !exists {
		return prediction.Prediction{}, notFound("Prediction")
	}

	return updated, nil
}

func (s *PredictionService) DeletePrediction(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: prediction id is required", ErrInvalidInput)
	}

	if err := s.predictionRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete prediction: %w", err)
	}

	return nil
}
