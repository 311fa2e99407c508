package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/teamtally/clubdesk/internal/domain/formation"
	"github.com/teamtally/clubdesk/internal/usecase"
)

type formationPositionPayload struct {
	Slot     int    `json:"slot" validate:"gte=1"`
	Role     string `json:"role" validate:"required"`
	PlayerID string `json:"player_id" validate:"required"`
}

type createFormationRequest struct {
	MatchID   string                     `json:"match_id" validate:"required"`
	Shape     string                     `json:"shape" validate:"required"`
	Positions []formationPositionPayload `json:"positions" validate:"required,min=1,dive"`
}

type updateFormationRequest struct {
	Shape     *string                     `json:"shape"`
	Positions *[]formationPositionPayload `json:"positions" validate:"omitempty,min=1,dive"`
}

type formationDTO struct {
	ID        string                     `json:"id"`
	MatchID   string                     `json:"match_id"`
	Shape     string                     `json:"shape"`
	Positions []formationPositionPayload `json:"positions"`
	CreatedAt time.Time                  `json:"created_at"`
	UpdatedAt time.Time                  `json:"updated_at"`
}

func positionsFromPayload(payloads []formationPositionPayload) []formation.Position {
	positions := make([]formation.Position, 0, len(payloads))
	for _, p := range payloads {
		positions = append(positions, formation.Position{
			Slot:     p.Slot,
			Role:     p.Role,
			PlayerID: p.PlayerID,
		})
	}
	return positions
}

func formationToDTO(f formation.Formation) formationDTO {
	positions := make([]formationPositionPayload, 0, len(f.Positions))
	for _, p := range f.Positions {
		positions = append(positions, formationPositionPayload{
			Slot:     p.Slot,
			Role:     p.Role,
			PlayerID: p.PlayerID,
		})
	}

	return formationDTO{
		ID:        f.ID,
		MatchID:   f.MatchID,
		Shape:     f.Shape,
		Positions: positions,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func (h *Handler) CreateFormation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateFormation")
	defer span.End()

	var req createFormationRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.formationService.CreateFormation(ctx, usecase.CreateFormationInput{
		MatchID:   req.MatchID,
		Shape:     req.Shape,
		Positions: positionsFromPayload(req.Positions),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create formation failed", "match_id", req.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, formationToDTO(created))
}

func (h *Handler) ListFormations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFormations")
	defer span.End()

	formations, err := h.formationService.ListFormations(ctx, formation.Filter{
		MatchID: strings.TrimSpace(r.URL.Query().Get("match_id")),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list formations failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]formationDTO, 0, len(formations))
	for _, f := range formations {
		items = append(items, formationToDTO(f))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetFormation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFormation")
	defer span.End()

	formationID := strings.TrimSpace(r.PathValue("formationID"))
	item, err := h.formationService.GetFormation(ctx, formationID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, formationToDTO(item))
}

func (h *Handler) UpdateFormation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateFormation")
	defer span.End()

	formationID := strings.TrimSpace(r.PathValue("formationID"))
	var req updateFormationRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	patch := formation.Patch{Shape: req.Shape}
	if req.Positions != nil {
		positions := positionsFromPayload(*req.Positions)
		patch.Positions = &positions
	}

	updated, err := h.formationService.UpdateFormation(ctx, formationID, patch)
	if err != nil {
		h.logger.WarnContext(ctx, "update formation failed", "formation_id", formationID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, formationToDTO(updated))
}

func (h *Handler) DeleteFormation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteFormation")
	defer span.End()

	formationID := strings.TrimSpace(r.PathValue("formationID"))
	if err := h.formationService.DeleteFormation(ctx, formationID); err != nil {
		h.logger.WarnContext(ctx, "delete formation failed", "formation_id", formationID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(ctx, w)
}
