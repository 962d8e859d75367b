package main

import (
	"fmt"
	"log"
	"net/http"
	"socialnetCPT/cmd/app"
	"socialnetCPT/internal/config"
	handlers "socialnetCPT/internal/handler"
	"socialnetCPT/internal/middleware"

	"github.com/gorilla/mux"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)

	router.HandleFunc("/api/users", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/users/avatar", handler.UploadAvatar).Methods(http.MethodPost)
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

	handlerChain := middleware.Chain(
		router,
		middleware.AuthMiddleware(services.Token),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
