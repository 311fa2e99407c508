package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/teamtally/clubdesk/internal/domain/match"
	"github.com/teamtally/clubdesk/internal/usecase"
)

type createMatchRequest struct {
	TeamID    string    `json:"team_id" validate:"required"`
	Opponent  string    `json:"opponent" validate:"required,max=120"`
	KickoffAt time.Time `json:"kickoff_at" validate:"required"`
	Venue     string    `json:"venue" validate:"required"`
}

type updateMatchRequest struct {
	Opponent     *string    `json:"opponent" validate:"omitempty,max=120"`
	KickoffAt    *time.Time `json:"kickoff_at"`
	Venue        *string    `json:"venue"`
	GoalsFor     *int       `json:"goals_for" validate:"omitempty,gte=0"`
	GoalsAgainst *int       `json:"goals_against" validate:"omitempty,gte=0"`
	Status       *string    `json:"status"`
}

type matchDTO struct {
	ID           string    `json:"id"`
	TeamID       string    `json:"team_id"`
	Opponent     string    `json:"opponent"`
	KickoffAt    time.Time `json:"kickoff_at"`
	Venue        string    `json:"venue"`
	GoalsFor     int       `json:"goals_for"`
	GoalsAgainst int       `json:"goals_against"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:           m.ID,
		TeamID:       m.TeamID,
		Opponent:     m.Opponent,
		KickoffAt:    m.KickoffAt,
		Venue:        string(m.Venue),
		GoalsFor:     m.GoalsFor,
		GoalsAgainst: m.GoalsAgainst,
		Status:       string(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req createMatchRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.matchService.CreateMatch(ctx, usecase.CreateMatchInput{
		TeamID:    req.TeamID,
		Opponent:  req.Opponent,
		KickoffAt: req.KickoffAt,
		Venue:     match.Venue(req.Venue),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(created))
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	query := r.URL.Query()
	matches, err := h.matchService.ListMatches(ctx, match.Filter{
		TeamID: strings.TrimSpace(query.Get("team_id")),
		Status: match.Status(strings.TrimSpace(query.Get("status"))),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	item, err := h.matchService.GetMatch(ctx, matchID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	var req updateMatchRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	patch := match.Patch{
		Opponent:     req.Opponent,
		KickoffAt:    req.KickoffAt,
		GoalsFor:     req.GoalsFor,
		GoalsAgainst: req.GoalsAgainst,
	}
	if req.Venue != nil {
		venue := match.Venue(*req.Venue)
		patch.Venue = &venue
	}
	if req.Status != nil {
		status := match.Status(*req.Status)
		patch.Status = &status
	}

	updated, err := h.matchService.UpdateMatch(ctx, matchID, patch)
	if err != nil {
		h.logger.WarnContext(ctx, "update match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(updated))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	if err := h.matchService.DeleteMatch(ctx, matchID); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(ctx, w)
}
