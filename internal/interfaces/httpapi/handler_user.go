package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/teamtally/clubdesk/internal/domain/user"
	"github.com/teamtally/clubdesk/internal/usecase"
)

type registerUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"`
	Plan     string `json:"plan"`
}

type updateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Role     *string `json:"role"`
	Plan     *string `json:"plan"`
	IsActive *bool   `json:"is_active"`
}

// userDTO deliberately omits the password hash.
type userDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Plan      string    `json:"plan"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func userToDTO(u user.User) userDTO {
	return userDTO{
		ID:        u.ID,
		Email:     u.Email,
		Role:      string(u.Role),
		Plan:      string(u.Plan),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegisterUser")
	defer span.End()

	var req registerUserRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.userService.RegisterUser(ctx, usecase.RegisterUserInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     user.Role(req.Role),
		Plan:     user.Plan(req.Plan),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "register user failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, userToDTO(created))
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUsers")
	defer span.End()

	query := r.URL.Query()
	filter := user.Filter{
		Role: user.Role(strings.TrimSpace(query.Get("role"))),
		Plan: user.Plan(strings.TrimSpace(query.Get("plan"))),
	}
	if raw := strings.TrimSpace(query.Get("active")); raw != "" {
		active := raw == "true"
		filter.Active = &active
	}

	users, err := h.userService.ListUsers(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list users failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]userDTO, 0, len(users))
	for _, u := range users {
		items = append(items, userToDTO(u))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetUser")
	defer span.End()

	userID := strings.TrimSpace(r.PathValue("userID"))
	item, err := h.userService.GetUser(ctx, userID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userToDTO(item))
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateUser")
	defer span.End()

	userID := strings.TrimSpace(r.PathValue("userID"))
	var req updateUserRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	patch := user.Patch{
		Email:    req.Email,
		IsActive: req.IsActive,
	}
	if req.Role != nil {
		role := user.Role(*req.Role)
		patch.Role = &role
	}
	if req.Plan != nil {
		plan := user.Plan(*req.Plan)
		patch.Plan = &plan
	}

	updated, err := h.userService.UpdateUser(ctx, userID, patch)
	if err != nil {
		h.logger.WarnContext(ctx, "update user failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userToDTO(updated))
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteUser")
	defer span.End()

	userID := strings.TrimSpace(r.PathValue("userID"))
	if err := h.userService.DeleteUser(ctx, userID); err != nil {
		h.logger.WarnContext(ctx, "delete user failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(ctx, w)
}
