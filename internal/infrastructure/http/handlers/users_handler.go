package handlers

import (
	"net/http"

	"taskboard/internal/application/ports"
	"taskboard/internal/domain"
	"taskboard/internal/infrastructure/http/middleware"
)

// UsersHandler handles /users/*. Requires JWT auth.
type UsersHandler struct {
	userRepo ports.UserRepository
}

// NewUsersHandler creates a handler for user resource endpoints.
func NewUsersHandler(userRepo ports.UserRepository) *UsersHandler {
	return &UsersHandler{userRepo: userRepo}
}

// List returns every registered user without password material.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userRepo.List(r.Context())
	if err != nil {
		writeErr(w, http.StatusInternalServerError, ErrCodeInternal, "internal error")
		return
	}
	items := make([]userResponse, 0, len(users))
	for _, u := range users {
		items = append(items, userResponse{
			ID:        u.ID.String(),
			Username:  u.Username,
			Email:     u.Email,
			CreatedAt: u.CreatedAt.Format(timeLayout),
			UpdatedAt: u.UpdatedAt.Format(timeLayout),
		})
	}
	writeJSON(w, http.StatusOK, items)
}

// Me returns the current user from the JWT. Requires AuthValidator middleware.
func (h *UsersHandler) Me(w http.ResponseWriter, r *http.Request) {
	userIDStr, _ := middleware.UserFromContext(r.Context())
	if userIDStr == "" {
		writeErr(w, http.StatusUnauthorized, ErrCodeUnauthorized, "unauthorized")
		return
	}
	userID, err := domain.ParseUserID(userIDStr)
	if err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid user id")
		return
	}
	user, err := h.userRepo.GetByID(r.Context(), userID)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, ErrCodeInternal, "internal error")
		return
	}
	if user == nil {
		writeErr(w, http.StatusNotFound, ErrCodeNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, userResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(timeLayout),
		UpdatedAt: user.UpdatedAt.Format(timeLayout),
	})
}
