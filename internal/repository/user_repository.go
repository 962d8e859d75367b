package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"socialnetCPT/internal/apperrors"
	"socialnetCPT/internal/models"
)

type userRepository struct {
	db      *sqlx.DB
	timeout time.Duration
}

func NewUserRepository(db *sqlx.DB, timeout time.Duration) UserRepository {
	return &userRepository{db: db, timeout: timeout}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	if user.UserID == "" {
		user.UserID = uuid.New().String()
	}
	user.CreatedAt = time.Now()

	query := `
		INSERT INTO users (user_id, name, email, password_hash, avatar_url, created_at)
		VALUES (:user_id, :name, :email, :password_hash, :avatar_url, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		// UNIQUE(email) страхует проверку существования от гонки при регистрации
		if isUniqueViolation(err) {
			return apperrors.Conflict("пользователь с таким email уже существует")
		}
		return storageError("создание пользователя", err)
	}

	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var user models.User

	query := `SELECT * FROM users WHERE user_id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("пользователь не найден")
		}
		return nil, storageError("получение пользователя", err)
	}

	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var user models.User

	query := `SELECT * FROM users WHERE email = $1`

	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("пользователь не найден")
		}
		return nil, storageError("получение пользователя по email", err)
	}

	return &user, nil
}

func (r *userRepository) UpdateAvatar(ctx context.Context, userID, avatarURL string) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query := `UPDATE users SET avatar_url = $1 WHERE user_id = $2`

	result, err := r.db.ExecContext(ctx, query, avatarURL, userID)
	if err != nil {
		return storageError("обновление аватара", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storageError("проверка обновленных строк", err)
	}

	if rowsAffected == 0 {
		return apperrors.NotFound("пользователь не найден")
	}

	return nil
}
