package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"

	"socialnetCPT/internal/apperrors"
	"socialnetCPT/internal/models"
	"socialnetCPT/internal/repository"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	GetCurrentUser(ctx context.Context, userID string) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenService
	hasher   PasswordHasher
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenService, hasher PasswordHasher) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		hasher:   hasher,
	}
}

// Register создает пользователя и сразу выдает токен сессии
func (s *authService) Register(ctx context.Context, name, email, password string) (string, error) {
	_, err := s.userRepo.GetUserByEmail(ctx, email)
	if err == nil {
		return "", apperrors.Conflict("пользователь с таким email уже существует")
	}
	if !apperrors.IsKind(err, apperrors.KindNotFound) {
		return "", err
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return "", apperrors.Internal("ошибка хеширования пароля", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		AvatarURL:    gravatarURL(email),
	}

	err = s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return "", err
	}

	token, err := s.tokens.Issue(user.UserID)
	if err != nil {
		return "", apperrors.Internal("ошибка выдачи токена", err)
	}

	return token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		// не уточняем, что именно не подошло
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return "", apperrors.Validation("неверный email или пароль")
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", apperrors.Validation("неверный email или пароль")
	}

	token, err := s.tokens.Issue(user.UserID)
	if err != nil {
		return "", apperrors.Internal("ошибка выдачи токена", err)
	}

	return token, nil
}

func (s *authService) GetCurrentUser(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

// gravatarURL строит адрес аватара по email: s=200, r=pg, d=mm
func gravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?s=200&r=pg&d=mm", hex.EncodeToString(sum[:]))
}
