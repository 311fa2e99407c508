package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/teamtally/clubdesk/internal/domain/payment"
	"github.com/teamtally/clubdesk/internal/usecase"
)

type createPaymentRequest struct {
	UserID      string    `json:"user_id" validate:"required"`
	AmountCents int64     `json:"amount_cents" validate:"required,gt=0"`
	Currency    string    `json:"currency" validate:"required,len=3"`
	DueAt       time.Time `json:"due_at" validate:"required"`
}

type updatePaymentRequest struct {
	AmountCents *int64     `json:"amount_cents" validate:"omitempty,gt=0"`
	DueAt       *time.Time `json:"due_at"`
	Status      *string    `json:"status"`
}

type paymentDTO struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	AmountCents int64      `json:"amount_cents"`
	Currency    string     `json:"currency"`
	DueAt       time.Time  `json:"due_at"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func paymentToDTO(p payment.Payment) paymentDTO {
	return paymentDTO{
		ID:          p.ID,
		UserID:      p.UserID,
		AmountCents: p.AmountCents,
		Currency:    p.Currency,
		DueAt:       p.DueAt,
		PaidAt:      p.PaidAt,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePayment")
	defer span.End()

	var req createPaymentRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.paymentService.CreatePayment(ctx, usecase.CreatePaymentInput{
		UserID:      req.UserID,
		AmountCents: req.AmountCents,
		Currency:    req.Currency,
		DueAt:       req.DueAt,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create payment failed", "user_id", req.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, paymentToDTO(created))
}

func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPayments")
	defer span.End()

	query := r.URL.Query()
	payments, err := h.paymentService.ListPayments(ctx, payment.Filter{
		UserID: strings.TrimSpace(query.Get("user_id")),
		Status: payment.Status(strings.TrimSpace(query.Get("status"))),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list payments failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]paymentDTO, 0, len(payments))
	for _, p := range payments {
		items = append(items, paymentToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPayment(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPayment")
	defer span.End()

	paymentID := strings.TrimSpace(r.PathValue("paymentID"))
	item, err := h.paymentService.GetPayment(ctx, paymentID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, paymentToDTO(item))
}

func (h *Handler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePayment")
	defer span.End()

	paymentID := strings.TrimSpace(r.PathValue("paymentID"))
	var req updatePaymentRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	patch := payment.Patch{
		AmountCents: req.AmountCents,
		DueAt:       req.DueAt,
	}
	if req.Status != nil {
		status := payment.Status(*req.Status)
		patch.Status = &status
	}

	updated, err := h.paymentService.UpdatePayment(ctx, paymentID, patch)
	if err != nil {
		h.logger.WarnContext(ctx, "update payment failed", "payment_id", paymentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, paymentToDTO(updated))
}

func (h *Handler) MarkPaymentPaid(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MarkPaymentPaid")
	defer span.End()

	paymentID := strings.TrimSpace(r.PathValue("paymentID"))
	updated, err := h.paymentService.MarkPaid(ctx, paymentID)
	if err != nil {
		h.logger.WarnContext(ctx, "mark payment paid failed", "payment_id", paymentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, paymentToDTO(updated))
}

func (h *Handler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePayment")
	defer span.End()

	paymentID := strings.TrimSpace(r.PathValue("paymentID"))
	if err := h.paymentService.DeletePayment(ctx, paymentID); err != nil {
		h.logger.WarnContext(ctx, "delete payment failed", "payment_id", paymentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(ctx, w)
}
