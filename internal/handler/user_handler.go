package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"socialnetCPT/internal/middleware"
)

type AvatarResponse struct {
	AvatarURL string `json:"avatarUrl"`
}

// GetUser - GET /api/users/{id}, профиль без хеша пароля
func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	user, err := h.UserService.GetUser(r.Context(), userID)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteSuccess(w, user, http.StatusOK)
}

// UploadAvatar - POST /api/users/avatar, multipart поле "avatar".
// Снимки аватара в старых постах и комментариях не обновляются.
func (h *Handlers) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "требуется авторизация", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "файл слишком большой или неверный формат запроса", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		WriteError(w, "отсутствует файл avatar", http.StatusBadRequest)
		return
	}
	defer file.Close()

	avatarURL, err := h.UserService.UploadAvatar(r.Context(), userID, header.Filename, file, header.Size)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteSuccess(w, AvatarResponse{AvatarURL: avatarURL}, http.StatusOK)
}
