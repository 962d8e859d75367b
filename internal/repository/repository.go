package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"socialnetCPT/internal/apperrors"
	"socialnetCPT/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateAvatar(ctx context.Context, userID, avatarURL string) error
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	GetAll(ctx context.Context) ([]models.Post, error)
	Delete(ctx context.Context, postID string) error
}

type LikeRepository interface {
	Add(ctx context.Context, postID, userID string, version int64) error
	Remove(ctx context.Context, postID, userID string, version int64) error
	GetByPostID(ctx context.Context, postID string) ([]models.Like, error)
}

type CommentRepository interface {
	Add(ctx context.Context, postID string, comment *models.Comment, version int64) error
	Remove(ctx context.Context, postID, commentID string, version int64) error
	GetByPostID(ctx context.Context, postID string) ([]models.Comment, error)
}

type Repository struct {
	User    UserRepository
	Post    PostRepository
	Like    LikeRepository
	Comment CommentRepository
}

func NewRepository(db *sqlx.DB, queryTimeout time.Duration) *Repository {
	return &Repository{
		User:    NewUserRepository(db, queryTimeout),
		Post:    NewPostRepository(db, queryTimeout),
		Like:    NewLikeRepository(db, queryTimeout),
		Comment: NewCommentRepository(db, queryTimeout),
	}
}

// withTimeout ограничивает каждый запрос к БД таймаутом из конфигурации
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key value")
}

// storageError превращает ошибку БД в StorageUnavailable для границы
func storageError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.Storage(fmt.Sprintf("таймаут запроса к БД: %s", op), err)
	}
	return apperrors.Storage(fmt.Sprintf("ошибка БД: %s", op), err)
}
