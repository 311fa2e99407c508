package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/teamtally/clubdesk/internal/domain/player"
	"github.com/teamtally/clubdesk/internal/usecase"
)

type createPlayerRequest struct {
	Name      string    `json:"name" validate:"required,max=120"`
	BirthDate time.Time `json:"birth_date" validate:"required"`
	Position  string    `json:"position" validate:"required"`
}

type updatePlayerRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=120"`
	Position *string `json:"position"`
	IsActive *bool   `json:"is_active"`
}

type playerDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birth_date"`
	Position  string    `json:"position"`
	Age       int       `json:"age"`
	IsActive  bool      `json:"is_active"`
	TeamIDs   []string  `json:"team_ids"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func playerToDTO(p player.Player) playerDTO {
	teamIDs := p.TeamIDs
	if teamIDs == nil {
		teamIDs = []string{}
	}

	return playerDTO{
		ID:        p.ID,
		Name:      p.Name,
		BirthDate: p.BirthDate,
		Position:  string(p.Position),
		Age:       p.Age(time.Now().UTC()),
		IsActive:  p.IsActive,
		TeamIDs:   teamIDs,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req createPlayerRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.playerService.CreatePlayer(ctx, usecase.CreatePlayerInput{
		Name:      req.Name,
		BirthDate: req.BirthDate,
		Position:  player.Position(req.Position),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(created))
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	query := r.URL.Query()
	filter := player.Filter{
		TeamID:   strings.TrimSpace(query.Get("team_id")),
		Position: player.Position(strings.TrimSpace(query.Get("position"))),
	}
	if raw := strings.TrimSpace(query.Get("active")); raw != "" {
		active := raw == "true"
		filter.Active = &active
	}

	players, err := h.playerService.ListPlayers(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	item, err := h.playerService.GetPlayer(ctx, playerID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	var req updatePlayerRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	patch := player.Patch{
		Name:     req.Name,
		IsActive: req.IsActive,
	}
	if req.Position != nil {
		position := player.Position(*req.Position)
		patch.Position = &position
	}

	updated, err := h.playerService.UpdatePlayer(ctx, playerID, patch)
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	if err := h.playerService.DeletePlayer(ctx, playerID); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(ctx, w)
}

func (h *Handler) AddPlayerToTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddPlayerToTeam")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	playerID := strings.TrimSpace(r.PathValue("playerID"))

	if err := h.playerService.AddPlayerToTeam(ctx, playerID, teamID); err != nil {
		h.logger.WarnContext(ctx, "add player to team failed", "team_id", teamID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{
		"team_id":   teamID,
		"player_id": playerID,
	})
}

func (h *Handler) RemovePlayerFromTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemovePlayerFromTeam")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	playerID := strings.TrimSpace(r.PathValue("playerID"))

	if err := h.playerService.RemovePlayerFromTeam(ctx, playerID, teamID); err != nil {
		h.logger.WarnContext(ctx, "remove player from team failed", "team_id", teamID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(ctx, w)
}
