package app

import (
	"log"
	"socialnetCPT/internal/config"
	"socialnetCPT/internal/database"
	"socialnetCPT/internal/repository"
	"socialnetCPT/internal/service"
	"socialnetCPT/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать MinIO: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB, cfg.QueryTimeout)

	services := service.NewService(repo, cfg, minioClient)

	return db, repo, services
}
