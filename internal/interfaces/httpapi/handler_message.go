package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/teamtally/clubdesk/internal/domain/message"
	"github.com/teamtally/clubdesk/internal/usecase"
)

type createMessageRequest struct {
	TeamID  string `json:"team_id" validate:"required"`
	Subject string `json:"subject" validate:"required,max=200"`
	Body    string `json:"body" validate:"required"`
}

type updateMessageRequest struct {
	Subject *string `json:"subject" validate:"omitempty,max=200"`
	Body    *string `json:"body"`
}

type messageDTO struct {
	ID           string     `json:"id"`
	SenderUserID string     `json:"sender_user_id"`
	TeamID       string     `json:"team_id"`
	Subject      string     `json:"subject"`
	Body         string     `json:"body"`
	SentAt       *time.Time `json:"sent_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type messageRecipientDTO struct {
	MessageID   string    `json:"message_id"`
	PlayerID    string    `json:"player_id"`
	DeliveredAt time.Time `json:"delivered_at"`
}

type broadcastResultDTO struct {
	Message    messageDTO `json:"message"`
	Recipients int        `json:"recipients"`
	Failed     int        `json:"failed"`
}

func messageToDTO(m message.Message) messageDTO {
	return messageDTO{
		ID:           m.ID,
		SenderUserID: m.SenderUserID,
		TeamID:       m.TeamID,
		Subject:      m.Subject,
		Body:         m.Body,
		SentAt:       m.SentAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (h *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMessage")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req createMessageRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.messageService.CreateMessage(ctx, usecase.CreateMessageInput{
		SenderUserID: principal.UserID,
		TeamID:       req.TeamID,
		Subject:      req.Subject,
		Body:         req.Body,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create message failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, messageToDTO(created))
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SendMessage")
	defer span.End()

	messageID := strings.TrimSpace(r.PathValue("messageID"))
	result, err := h.messageService.Broadcast(ctx, messageID)
	if err != nil {
		h.logger.WarnContext(ctx, "broadcast message failed", "message_id", messageID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, broadcastResultDTO{
		Message:    messageToDTO(result.Message),
		Recipients: result.Recipients,
		Failed:     result.Failed,
	})
}

func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMessages")
	defer span.End()

	query := r.URL.Query()
	filter := message.Filter{
		TeamID:       strings.TrimSpace(query.Get("team_id")),
		SenderUserID: strings.TrimSpace(query.Get("sender_user_id")),
	}
	if raw := strings.TrimSpace(query.Get("sent")); raw != "" {
		sent := raw == "true"
		filter.Sent = &sent
	}

	messages, err := h.messageService.ListMessages(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list messages failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]messageDTO, 0, len(messages))
	for _, m := range messages {
		items = append(items, messageToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMessage")
	defer span.End()

	messageID := strings.TrimSpace(r.PathValue("messageID"))
	item, err := h.messageService.GetMessage(ctx, messageID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, messageToDTO(item))
}

func (h *Handler) ListMessageRecipients(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMessageRecipients")
	defer span.End()

	messageID := strings.TrimSpace(r.PathValue("messageID"))
	recipients, err := h.messageService.ListRecipients(ctx, messageID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]messageRecipientDTO, 0, len(recipients))
	for _, rec := range recipients {
		items = append(items, messageRecipientDTO{
			MessageID:   rec.MessageID,
			PlayerID:    rec.PlayerID,
			DeliveredAt: rec.DeliveredAt,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) UpdateMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMessage")
	defer span.End()

	messageID := strings.TrimSpace(r.PathValue("messageID"))
	var req updateMessageRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.messageService.UpdateMessage(ctx, messageID, message.Patch{
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update message failed", "message_id", messageID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, messageToDTO(updated))
}

func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMessage")
	defer span.End()

	messageID := strings.TrimSpace(r.PathValue("messageID"))
	if err := h.messageService.DeleteMessage(ctx, messageID); err != nil {
		h.logger.WarnContext(ctx, "delete message failed", "message_id", messageID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(ctx, w)
}
