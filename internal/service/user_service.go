package service

import (
	"context"
	"io"

	"socialnetCPT/internal/apperrors"
	"socialnetCPT/internal/models"
	"socialnetCPT/internal/repository"
	"socialnetCPT/internal/storage"
)

type UserService interface {
	GetUser(ctx context.Context, userID string) (*models.User, error)
	UploadAvatar(ctx context.Context, userID, fileName string, file io.Reader, size int64) (string, error)
}

type userService struct {
	userRepo repository.UserRepository
	storage  storage.Storage
}

func NewUserService(userRepo repository.UserRepository, storage storage.Storage) UserService {
	return &userService{
		userRepo: userRepo,
		storage:  storage,
	}
}

func (s *userService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

// UploadAvatar меняет только профиль пользователя; снимки имени и аватара
// в уже созданных постах и комментариях не трогаются
func (s *userService) UploadAvatar(ctx context.Context, userID, fileName string, file io.Reader, size int64) (string, error) {
	_, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}

	objectName, avatarURL, err := s.storage.UploadAvatar(ctx, userID, fileName, file, size)
	if err != nil {
		return "", apperrors.Internal("ошибка загрузки аватара", err)
	}

	err = s.userRepo.UpdateAvatar(ctx, userID, avatarURL)
	if err != nil {
		s.storage.DeleteAvatar(ctx, objectName)
		return "", err
	}

	return avatarURL, nil
}
