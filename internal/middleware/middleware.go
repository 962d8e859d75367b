package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"socialnetCPT/internal/service"
)

type Middleware func(http.Handler) http.Handler

type contextKey string

const userIDKey contextKey = "userID"

// UserIDFromContext возвращает идентификатор, положенный AuthMiddleware
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

// WithUserID используется там, где запрос не проходит через AuthMiddleware
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

type publicRoute struct {
	method string
	path   string
}

// Публичные эндпоинты: регистрация и вход. GET /api/auth защищен.
var publicRoutes = []publicRoute{
	{http.MethodPost, "/api/users"},
	{http.MethodPost, "/api/auth"},
	{http.MethodGet, "/health"},
	{http.MethodGet, "/"},
}

// AuthMiddleware проверяет JWT токен и кладет идентификатор пользователя
// в контекст. Проверка только читает токен, в БД не ходит.
func AuthMiddleware(tokens service.TokenService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, route := range publicRoutes {
				if r.URL.Path == route.path && (r.Method == route.method || r.Method == http.MethodOptions) {
					next.ServeHTTP(w, r)
					return
				}
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeUnauthorized(w)
				return
			}

			// Проверяем формат "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				writeUnauthorized(w)
				return
			}

			userID, err := tokens.Verify(parts[1])
			if err != nil {
				// причина отказа только в логе, наружу единый 401
				log.Printf("Отказ в авторизации %s %s: %v", r.Method, r.URL.Path, err)
				writeUnauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"errors": []map[string]string{{"msg": "требуется авторизация"}},
	})
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("Method: %s, URL: %s", r.Method, r.RequestURI)
		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
