package handlers

import (
	"encoding/json"
	"net/http"

	"socialnetCPT/internal/middleware"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// Register - POST /api/users
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteValidationError(w, err)
		return
	}

	token, err := h.AuthService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteSuccess(w, TokenResponse{Token: token}, http.StatusOK)
}

// Login - POST /api/auth
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteValidationError(w, err)
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteSuccess(w, TokenResponse{Token: token}, http.StatusOK)
}

// GetCurrentUser - GET /api/auth, хеш пароля в ответ не попадает
func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "требуется авторизация", http.StatusUnauthorized)
		return
	}

	user, err := h.AuthService.GetCurrentUser(r.Context(), userID)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteSuccess(w, user, http.StatusOK)
}
