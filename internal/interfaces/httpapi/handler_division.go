package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/teamtally/clubdesk/internal/domain/division"
	"github.com/teamtally/clubdesk/internal/usecase"
)

type createDivisionRequest struct {
	Name     string `json:"name" validate:"required,max=120"`
	Gender   string `json:"gender" validate:"required"`
	Category string `json:"category"`
	AgeMin   int    `json:"age_min" validate:"gte=0"`
	AgeMax   int    `json:"age_max" validate:"gte=0"`
}

type updateDivisionRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=120"`
	Gender   *string `json:"gender"`
	Category *string `json:"category"`
	AgeMin   *int    `json:"age_min" validate:"omitempty,gte=0"`
	AgeMax   *int    `json:"age_max" validate:"omitempty,gte=0"`
}

type divisionDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Gender    string    `json:"gender"`
	Category  string    `json:"category"`
	AgeMin    int       `json:"age_min"`
	AgeMax    int       `json:"age_max"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func divisionToDTO(d division.Division) divisionDTO {
	return divisionDTO{
		ID:        d.ID,
		Name:      d.Name,
		Gender:    string(d.Gender),
		Category:  d.Category,
		AgeMin:    d.AgeMin,
		AgeMax:    d.AgeMax,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (h *Handler) CreateDivision(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateDivision")
	defer span.End()

	var req createDivisionRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.divisionService.CreateDivision(ctx, usecase.CreateDivisionInput{
		Name:     req.Name,
		Gender:   division.Gender(req.Gender),
		Category: req.Category,
		AgeMin:   req.AgeMin,
		AgeMax:   req.AgeMax,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create division failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, divisionToDTO(created))
}

func (h *Handler) ListDivisions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDivisions")
	defer span.End()

	query := r.URL.Query()
	divisions, err := h.divisionService.ListDivisions(ctx, division.Filter{
		Gender:   division.Gender(strings.TrimSpace(query.Get("gender"))),
		Category: strings.TrimSpace(query.Get("category")),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list divisions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]divisionDTO, 0, len(divisions))
	for _, d := range divisions {
		items = append(items, divisionToDTO(d))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetDivision(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDivision")
	defer span.End()

	divisionID := strings.TrimSpace(r.PathValue("divisionID"))
	item, err := h.divisionService.GetDivision(ctx, divisionID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, divisionToDTO(item))
}

func (h *Handler) UpdateDivision(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateDivision")
	defer span.End()

	divisionID := strings.TrimSpace(r.PathValue("divisionID"))
	var req updateDivisionRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	patch := division.Patch{
		Name:     req.Name,
		Category: req.Category,
		AgeMin:   req.AgeMin,
		AgeMax:   req.AgeMax,
	}
	if req.Gender != nil {
		gender := division.Gender(*req.Gender)
		patch.Gender = &gender
	}

	updated, err := h.divisionService.UpdateDivision(ctx, divisionID, patch)
	if err != nil {
		h.logger.WarnContext(ctx, "update division failed", "division_id", divisionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, divisionToDTO(updated))
}

func (h *Handler) DeleteDivision(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteDivision")
	defer span.End()

	divisionID := strings.TrimSpace(r.PathValue("divisionID"))
	if err := h.divisionService.DeleteDivision(ctx, divisionID); err != nil {
		h.logger.WarnContext(ctx, "delete division failed", "division_id", divisionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(ctx, w)
}
