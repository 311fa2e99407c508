package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/teamtally/clubdesk/internal/domain/attendance"
	"github.com/teamtally/clubdesk/internal/usecase"
)

type recordAttendanceRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
	Status   string `json:"status" validate:"required"`
	Note     string `json:"note" validate:"max=500"`
}

type recordMatchAttendanceRequest struct {
	Records []recordAttendanceRequest `json:"records" validate:"required,min=1,dive"`
}

type updateAttendanceRequest struct {
	Status *string `json:"status"`
	Note   *string `json:"note" validate:"omitempty,max=500"`
}

type attendanceDTO struct {
	ID        string    `json:"id"`
	PlayerID  string    `json:"player_id"`
	MatchID   string    `json:"match_id"`
	Status    string    `json:"status"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func attendanceToDTO(rec attendance.Record) attendanceDTO {
	return attendanceDTO{
		ID:        rec.ID,
		PlayerID:  rec.PlayerID,
		MatchID:   rec.MatchID,
		Status:    string(rec.Status),
		Note:      rec.Note,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

// RecordMatchAttendance records a whole match sheet in one call.
func (h *Handler) RecordMatchAttendance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordMatchAttendance")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	var req recordMatchAttendanceRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	inputs := make([]usecase.RecordAttendanceInput, 0, len(req.Records))
	for _, record := range req.Records {
		inputs = append(inputs, usecase.RecordAttendanceInput{
			PlayerID: record.PlayerID,
			Status:   attendance.Status(record.Status),
			Note:     record.Note,
		})
	}

	records, err := h.attendanceService.RecordBulk(ctx, matchID, inputs)
	if err != nil {
		h.logger.WarnContext(ctx, "record match attendance failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]attendanceDTO, 0, len(records))
	for _, rec := range records {
		items = append(items, attendanceToDTO(rec))
	}

	writeSuccess(ctx, w, http.StatusCreated, items)
}

// CreateAttendance records a single player's attendance; the match id comes
// in the payload on this route.
func (h *Handler) CreateAttendance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateAttendance")
	defer span.End()

	var req struct {
		MatchID  string `json:"match_id" validate:"required"`
		PlayerID string `json:"player_id" validate:"required"`
		Status   string `json:"status" validate:"required"`
		Note     string `json:"note" validate:"max=500"`
	}
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.attendanceService.RecordAttendance(ctx, req.MatchID, usecase.RecordAttendanceInput{
		PlayerID: req.PlayerID,
		Status:   attendance.Status(req.Status),
		Note:     req.Note,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record attendance failed", "match_id", req.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, attendanceToDTO(created))
}

func (h *Handler) ListAttendance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAttendance")
	defer span.End()

	query := r.URL.Query()
	records, err := h.attendanceService.ListAttendance(ctx, attendance.Filter{
		MatchID:  strings.TrimSpace(query.Get("match_id")),
		PlayerID: strings.TrimSpace(query.Get("player_id")),
		Status:   attendance.Status(strings.TrimSpace(query.Get("status"))),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list attendance failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]attendanceDTO, 0, len(records))
	for _, rec := range records {
		items = append(items, attendanceToDTO(rec))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetAttendance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAttendance")
	defer span.End()

	recordID := strings.TrimSpace(r.PathValue("recordID"))
	item, err := h.attendanceService.GetAttendance(ctx, recordID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, attendanceToDTO(item))
}

func (h *Handler) UpdateAttendance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateAttendance")
	defer span.End()

	recordID := strings.TrimSpace(r.PathValue("recordID"))
	var req updateAttendanceRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	patch := attendance.Patch{Note: req.Note}
	if req.Status != nil {
		status := attendance.Status(*req.Status)
		patch.Status = &status
	}

	updated, err := h.attendanceService.UpdateAttendance(ctx, recordID, patch)
	if err != nil {
		h.logger.WarnContext(ctx, "update attendance failed", "record_id", recordID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, attendanceToDTO(updated))
}

func (h *Handler) DeleteAttendance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteAttendance")
	defer span.End()

	recordID := strings.TrimSpace(r.PathValue("recordID"))
	if err := h.attendanceService.DeleteAttendance(ctx, recordID); err != nil {
		h.logger.WarnContext(ctx, "delete attendance failed", "record_id", recordID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(ctx, w)
}
