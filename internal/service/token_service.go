package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"socialnetCPT/internal/apperrors"
	"socialnetCPT/internal/config"
)

// Различимые причины отказа проверки токена. Наружу middleware отдает
// единый 401, причина остается в логе.
var (
	ErrTokenMalformed = apperrors.Unauthenticated("токен имеет неверный формат")
	ErrTokenSignature = apperrors.Unauthenticated("недействительная подпись токена")
	ErrTokenExpired   = apperrors.Unauthenticated("токен истек")
)

type TokenService interface {
	Issue(subjectID string) (string, error)
	Verify(tokenString string) (string, error)
}

type tokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService получает секрет из конфигурации один раз при старте;
// пустой секрет отсекается в main до создания сервиса
func NewTokenService(cfg *config.Config) TokenService {
	return &tokenService{
		secret: []byte(cfg.JWTSecretKey),
		ttl:    cfg.TokenDuration,
	}
}

func (s *tokenService) Issue(subjectID string) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"userId": subjectID,
		"iat":    now.Unix(),
		"exp":    now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

func (s *tokenService) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrTokenSignature
		default:
			return "", ErrTokenMalformed
		}
	}

	if !token.Valid {
		return "", ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenMalformed
	}

	subjectID, ok := claims["userId"].(string)
	if !ok || subjectID == "" {
		return "", ErrTokenMalformed
	}

	return subjectID, nil
}
