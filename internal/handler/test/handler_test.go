package test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"socialnetCPT/internal/config"
	handlers "socialnetCPT/internal/handler"
	"socialnetCPT/internal/middleware"
)

func createTestHandler(authService *MockAuthService, postService *MockPostService, userService *MockUserService) *handlers.Handlers {
	cfg := &config.Config{
		JWTSecretKey:  "test-secret-key",
		ServerPort:    8080,
		MaxUploadSize: 10 * 1024 * 1024,
	}

	return &handlers.Handlers{
		AuthService: authService,
		PostService: postService,
		UserService: userService,
		Cfg:         cfg,
		Validate:    validator.New(),
	}
}

// testRouter повторяет маршруты из main, чтобы mux.Vars заполнялись как в бою
func testRouter(handler *handlers.Handlers) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/api/users", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/users/{id}", handler.GetUser).Methods(http.MethodGet)
	router.HandleFunc("/api/auth", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/auth", handler.GetCurrentUser).Methods(http.MethodGet)
	router.HandleFunc("/api/posts", handler.CreatePost).Methods(http.MethodPost)
	router.HandleFunc("/api/posts", handler.GetPosts).Methods(http.MethodGet)
	router.HandleFunc("/api/posts/like/{id}", handler.LikePost).Methods(http.MethodPut)
	router.HandleFunc("/api/posts/unlike/{id}", handler.UnlikePost).Methods(http.MethodPut)
	router.HandleFunc("/api/posts/comment/{id}/{commentId}", handler.DeleteComment).Methods(http.MethodDelete)
	router.HandleFunc("/api/posts/comment/{id}", handler.AddComment).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{id}", handler.GetPost).Methods(http.MethodGet)
	router.HandleFunc("/api/posts/{id}", handler.DeletePost).Methods(http.MethodDelete)

	return router
}

// newAuthedRequest имитирует запрос, прошедший AuthMiddleware
func newAuthedRequest(t *testing.T, method, target, userID string, body io.Reader) *http.Request {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	return req.WithContext(middleware.WithUserID(req.Context(), userID))
}

/// assertErrorsContain проверяет ответ формата {errors:[{msg}]}
func assertErrorsContain(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response struct {
		Errors []struct {
			Msg string `json:"msg"`
		} `json:"errors"`
	}

	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.NotEmpty(t, response.Errors)

	found := false
	for _, item := range response.Errors {
		if strings.Contains(item.Msg, expectedMsg) {
			found = true
			break
		}
	}
	assert.True(t, found, "в ответе нет ошибки %q: %s", expectedMsg, rr.Body.String())
}
