package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"socialnetCPT/internal/middleware"
)

type CreatePostRequest struct {
	Text string `json:"text" validate:"required"`
}

type CommentRequest struct {
	Text string `json:"text" validate:"required"`
}

type MessageResponse struct {
	Msg string `json:"msg"`
}

// CreatePost - POST /api/posts
func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "требуется авторизация", http.StatusUnauthorized)
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteValidationError(w, err)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), userID, req.Text)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteSuccess(w, post, http.StatusCreated)
}

// GetPosts - GET /api/posts, новые первыми
func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.GetPosts(r.Context())
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

// GetPost - GET /api/posts/{id}
func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	post, err := h.PostService.GetPost(r.Context(), postID)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

// DeletePost - DELETE /api/posts/{id}, только автор поста
func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	err := h.PostService.DeletePost(r.Context(), postID, userID)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteSuccess(w, MessageResponse{Msg: "пост удален"}, http.StatusOK)
}

// LikePost - PUT /api/posts/like/{id}, повторный лайк дает 400
func (h *Handlers) LikePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	likes, err := h.PostService.LikePost(r.Context(), postID, userID)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteSuccess(w, likes, http.StatusOK)
}

// UnlikePost - PUT /api/posts/unlike/{id}
func (h *Handlers) UnlikePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	likes, err := h.PostService.UnlikePost(r.Context(), postID, userID)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteSuccess(w, likes, http.StatusOK)
}

// AddComment - POST /api/posts/comment/{id}
func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteValidationError(w, err)
		return
	}

	comments, err := h.PostService.AddComment(r.Context(), postID, userID, req.Text)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteSuccess(w, comments, http.StatusOK)
}

// DeleteComment - DELETE /api/posts/comment/{id}/{commentId},
// только автор самого комментария
func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "требуется авторизация", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	postID := vars["id"]
	commentID := vars["commentId"]

	comments, err := h.PostService.DeleteComment(r.Context(), postID, commentID, userID)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}

	WriteSuccess(w, comments, http.StatusOK)
}
