package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/teamtally/clubdesk/internal/domain/report"
	"github.com/teamtally/clubdesk/internal/usecase"
)

type createReportRequest struct {
	Kind  string `json:"kind" validate:"required"`
	Title string `json:"title" validate:"required,max=200"`
	Body  string `json:"body" validate:"required"`
}

type updateReportRequest struct {
	Kind  *string `json:"kind"`
	Title *string `json:"title" validate:"omitempty,max=200"`
	Body  *string `json:"body"`
}

type reportDTO struct {
	ID           string    `json:"id"`
	AuthorUserID string    `json:"author_user_id"`
	Kind         string    `json:"kind"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func reportToDTO(rep report.Report) reportDTO {
	return reportDTO{
		ID:           rep.ID,
		AuthorUserID: rep.AuthorUserID,
		Kind:         string(rep.Kind),
		Title:        rep.Title,
		Body:         rep.Body,
		CreatedAt:    rep.CreatedAt,
		UpdatedAt:    rep.UpdatedAt,
	}
}

func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateReport")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req createReportRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.reportService.CreateReport(ctx, usecase.CreateReportInput{
		AuthorUserID: principal.UserID,
		Kind:         report.Kind(req.Kind),
		Title:        req.Title,
		Body:         req.Body,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create report failed", "author_user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, reportToDTO(created))
}

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListReports")
	defer span.End()

	query := r.URL.Query()
	reports, err := h.reportService.ListReports(ctx, report.Filter{
		AuthorUserID: strings.TrimSpace(query.Get("author_user_id")),
		Kind:         report.Kind(strings.TrimSpace(query.Get("kind"))),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list reports failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]reportDTO, 0, len(reports))
	for _, rep := range reports {
		items = append(items, reportToDTO(rep))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetReport")
	defer span.End()

	reportID := strings.TrimSpace(r.PathValue("reportID"))
	item, err := h.reportService.GetReport(ctx, reportID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, reportToDTO(item))
}

func (h *Handler) UpdateReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateReport")
	defer span.End()

	reportID := strings.TrimSpace(r.PathValue("reportID"))
	var req updateReportRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	patch := report.Patch{
		Title: req.Title,
		Body:  req.Body,
	}
	if req.Kind != nil {
		kind := report.Kind(*req.Kind)
		patch.Kind = &kind
	}

	updated, err := h.reportService.UpdateReport(ctx, reportID, patch)
	if err != nil {
		h.logger.WarnContext(ctx, "update report failed", "report_id", reportID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, reportToDTO(updated))
}

func (h *Handler) DeleteReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteReport")
	defer span.End()

	reportID := strings.TrimSpace(r.PathValue("reportID"))
	if err := h.reportService.DeleteReport(ctx, reportID); err != nil {
		h.logger.WarnContext(ctx, "delete report failed", "report_id", reportID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(ctx, w)
}
