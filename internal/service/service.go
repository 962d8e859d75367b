package service

import (
	"socialnetCPT/internal/config"
	"socialnetCPT/internal/repository"
	"socialnetCPT/internal/storage"
)

type Service struct {
	Token TokenService
	Auth  AuthService
	Post  PostService
	User  UserService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	tokens := NewTokenService(cfg)
	hasher := NewPasswordHasher()

	return &Service{
		Token: tokens,
		Auth:  NewAuthService(rep.User, tokens, hasher),
		Post:  NewPostService(rep.User, rep.Post, rep.Like, rep.Comment),
		User:  NewUserService(rep.User, storage),
	}
}
