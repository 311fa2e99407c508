package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/teamtally/clubdesk/internal/domain/statistic"
	"github.com/teamtally/clubdesk/internal/usecase"
)

type createStatisticRequest struct {
	PlayerID      string `json:"player_id" validate:"required"`
	Season        string `json:"season" validate:"required,max=20"`
	MatchesPlayed int    `json:"matches_played" validate:"gte=0"`
	Goals         int    `json:"goals" validate:"gte=0"`
	Assists       int    `json:"assists" validate:"gte=0"`
	Minutes       int    `json:"minutes" validate:"gte=0"`
}

type updateStatisticRequest struct {
	MatchesPlayed *int `json:"matches_played" validate:"omitempty,gte=0"`
	Goals         *int `json:"goals" validate:"omitempty,gte=0"`
	Assists       *int `json:"assists" validate:"omitempty,gte=0"`
	Minutes       *int `json:"minutes" validate:"omitempty,gte=0"`
}

type statisticDTO struct {
	ID            string    `json:"id"`
	PlayerID      string    `json:"player_id"`
	Season        string    `json:"season"`
	MatchesPlayed int       `json:"matches_played"`
	Goals         int       `json:"goals"`
	Assists       int       `json:"assists"`
	Minutes       int       `json:"minutes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type seasonSummaryDTO struct {
	PlayerID      string `json:"player_id"`
	Season        string `json:"season"`
	MatchesPlayed int    `json:"matches_played"`
	Goals         int    `json:"goals"`
	Assists       int    `json:"assists"`
	Minutes       int    `json:"minutes"`
}

func statisticToDTO(st statistic.Statistic) statisticDTO {
	return statisticDTO{
		ID:            st.ID,
		PlayerID:      st.PlayerID,
		Season:        st.Season,
		MatchesPlayed: st.MatchesPlayed,
		Goals:         st.Goals,
		Assists:       st.Assists,
		Minutes:       st.Minutes,
		CreatedAt:     st.CreatedAt,
		UpdatedAt:     st.UpdatedAt,
	}
}

func (h *Handler) CreateStatistic(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateStatistic")
	defer span.End()

	var req createStatisticRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.statisticService.CreateStatistic(ctx, usecase.CreateStatisticInput{
		PlayerID:      req.PlayerID,
		Season:        req.Season,
		MatchesPlayed: req.MatchesPlayed,
		Goals:         req.Goals,
		Assists:       req.Assists,
		Minutes:       req.Minutes,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create statistic failed", "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, statisticToDTO(created))
}

func (h *Handler) ListStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStatistics")
	defer span.End()

	query := r.URL.Query()
	statistics, err := h.statisticService.ListStatistics(ctx, statistic.Filter{
		PlayerID: strings.TrimSpace(query.Get("player_id")),
		Season:   strings.TrimSpace(query.Get("season")),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list statistics failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]statisticDTO, 0, len(statistics))
	for _, st := range statistics {
		items = append(items, statisticToDTO(st))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetStatistic(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStatistic")
	defer span.End()

	statisticID := strings.TrimSpace(r.PathValue("statisticID"))
	item, err := h.statisticService.GetStatistic(ctx, statisticID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, statisticToDTO(item))
}

func (h *Handler) GetPlayerSeasonSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerSeasonSummary")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	season := strings.TrimSpace(r.PathValue("season"))

	summary, err := h.statisticService.SeasonSummary(ctx, playerID, season)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonSummaryDTO{
		PlayerID:      summary.PlayerID,
		Season:        summary.Season,
		MatchesPlayed: summary.MatchesPlayed,
		Goals:         summary.Goals,
		Assists:       summary.Assists,
		Minutes:       summary.Minutes,
	})
}

func (h *Handler) UpdateStatistic(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateStatistic")
	defer span.End()

	statisticID := strings.TrimSpace(r.PathValue("statisticID"))
	var req updateStatisticRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.statisticService.UpdateStatistic(ctx, statisticID, statistic.Patch{
		MatchesPlayed: req.MatchesPlayed,
		Goals:         req.Goals,
		Assists:       req.Assists,
		Minutes:       req.Minutes,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update statistic failed", "statistic_id", statisticID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, statisticToDTO(updated))
}

func (h *Handler) DeleteStatistic(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteStatistic")
	defer span.End()

	statisticID := strings.TrimSpace(r.PathValue("statisticID"))
	if err := h.statisticService.DeleteStatistic(ctx, statisticID); err != nil {
		h.logger.WarnContext(ctx, "delete statistic failed", "statistic_id", statisticID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(ctx, w)
}
