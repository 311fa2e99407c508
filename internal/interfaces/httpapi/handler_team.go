package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/teamtally/clubdesk/internal/domain/division"
	"github.com/teamtally/clubdesk/internal/domain/team"
	"github.com/teamtally/clubdesk/internal/usecase"
)

type createTeamRequest struct {
	Name       string `json:"name" validate:"required,max=120"`
	ClubName   string `json:"club_name" validate:"required,max=120"`
	DivisionID string `json:"division_id" validate:"required"`
	MaxPlayers int    `json:"max_players" validate:"gte=0"`
	SquadAge   int    `json:"squad_age" validate:"gte=0"`
	Gender     string `json:"gender" validate:"required"`
	Category   string `json:"category"`
}

type updateTeamRequest struct {
	Name       *string `json:"name" validate:"omitempty,max=120"`
	ClubName   *string `json:"club_name" validate:"omitempty,max=120"`
	DivisionID *string `json:"division_id"`
	MaxPlayers *int    `json:"max_players" validate:"omitempty,gte=0"`
	IsActive   *bool   `json:"is_active"`
}

type teamDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ClubName    string    `json:"club_name"`
	DivisionID  string    `json:"division_id"`
	OwnerUserID string    `json:"owner_user_id"`
	MaxPlayers  int       `json:"max_players"`
	SquadAge    int       `json:"squad_age"`
	Gender      string    `json:"gender"`
	Category    string    `json:"category"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:          t.ID,
		Name:        t.Name,
		ClubName:    t.ClubName,
		DivisionID:  t.DivisionID,
		OwnerUserID: t.OwnerUserID,
		MaxPlayers:  t.MaxPlayers,
		SquadAge:    t.SquadAge,
		Gender:      string(t.Gender),
		Category:    t.Category,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req createTeamRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.teamService.CreateTeam(ctx, usecase.CreateTeamInput{
		Name:        req.Name,
		ClubName:    req.ClubName,
		DivisionID:  req.DivisionID,
		OwnerUserID: principal.UserID,
		MaxPlayers:  req.MaxPlayers,
		SquadAge:    req.SquadAge,
		Gender:      division.Gender(req.Gender),
		Category:    req.Category,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "owner_user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(created))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	query := r.URL.Query()
	filter := team.Filter{
		OwnerUserID: strings.TrimSpace(query.Get("owner_user_id")),
		DivisionID:  strings.TrimSpace(query.Get("division_id")),
		ClubName:    strings.TrimSpace(query.Get("club_name")),
	}
	if raw := strings.TrimSpace(query.Get("active")); raw != "" {
		active := raw == "true"
		filter.Active = &active
	}

	teams, err := h.teamService.ListTeams(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	item, err := h.teamService.GetTeam(ctx, teamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeam")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	var req updateTeamRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.teamService.UpdateTeam(ctx, teamID, team.Patch{
		Name:       req.Name,
		ClubName:   req.ClubName,
		DivisionID: req.DivisionID,
		MaxPlayers: req.MaxPlayers,
		IsActive:   req.IsActive,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(updated))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	if err := h.teamService.DeleteTeam(ctx, teamID); err != nil {
		h.logger.WarnContext(ctx, "delete team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(ctx, w)
}
