package service

import (
	"context"
	"strings"

	"socialnetCPT/internal/apperrors"
	"socialnetCPT/internal/models"
	"socialnetCPT/internal/repository"
)

type PostService interface {
	CreatePost(ctx context.Context, authorID, text string) (*models.Post, error)
	GetPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, postID string) (*models.Post, error)
	DeletePost(ctx context.Context, postID, userID string) error
	LikePost(ctx context.Context, postID, userID string) ([]models.Like, error)
	UnlikePost(ctx context.Context, postID, userID string) ([]models.Like, error)
	AddComment(ctx context.Context, postID, userID, text string) ([]models.Comment, error)
	DeleteComment(ctx context.Context, postID, commentID, userID string) ([]models.Comment, error)
}

type postService struct {
	userRepo    repository.UserRepository
	postRepo    repository.PostRepository
	likeRepo    repository.LikeRepository
	commentRepo repository.CommentRepository
}

func NewPostService(
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	likeRepo repository.LikeRepository,
	commentRepo repository.CommentRepository,
) PostService {
	return &postService{
		userRepo:    userRepo,
		postRepo:    postRepo,
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
	}
}

// CreatePost снимает имя и аватар автора на момент создания;
// при последующей смене профиля пост не обновляется
func (p *postService) CreatePost(ctx context.Context, authorID, text string) (*models.Post, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.Validation("текст поста обязателен",
			apperrors.FieldError{Msg: "текст поста обязателен", Param: "text"})
	}

	user, err := p.userRepo.GetUserByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		AuthorID:     user.UserID,
		AuthorName:   user.Name,
		AuthorAvatar: user.AvatarURL,
		Content:      text,
	}

	err = p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) GetPosts(ctx context.Context) ([]models.Post, error) {
	return p.postRepo.GetAll(ctx)
}

func (p *postService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	return p.postRepo.GetByID(ctx, postID)
}

func (p *postService) DeletePost(ctx context.Context, postID, userID string) error {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.AuthorID != userID {
		return apperrors.Forbidden("пост принадлежит другому пользователю")
	}

	return p.postRepo.Delete(ctx, postID)
}

// LikePost отклоняет повторный лайк, а не игнорирует его:
// инвариант "не больше одного лайка на пользователя"
func (p *postService) LikePost(ctx context.Context, postID, userID string) ([]models.Like, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if likedBy(post.Likes, userID) {
		return nil, apperrors.Conflict("пост уже отмечен")
	}

	err = p.likeRepo.Add(ctx, postID, userID, post.Version)
	if err != nil {
		return nil, err
	}

	return p.likeRepo.GetByPostID(ctx, postID)
}

func (p *postService) UnlikePost(ctx context.Context, postID, userID string) ([]models.Like, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !likedBy(post.Likes, userID) {
		return nil, apperrors.Conflict("пост не был отмечен")
	}

	err = p.likeRepo.Remove(ctx, postID, userID, post.Version)
	if err != nil {
		return nil, err
	}

	return p.likeRepo.GetByPostID(ctx, postID)
}

func (p *postService) AddComment(ctx context.Context, postID, userID, text string) ([]models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.Validation("текст комментария обязателен",
			apperrors.FieldError{Msg: "текст комментария обязателен", Param: "text"})
	}

	user, err := p.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		AuthorID:     user.UserID,
		AuthorName:   user.Name,
		AuthorAvatar: user.AvatarURL,
		Content:      text,
	}

	err = p.commentRepo.Add(ctx, postID, comment, post.Version)
	if err != nil {
		return nil, err
	}

	return p.commentRepo.GetByPostID(ctx, postID)
}

// DeleteComment проверяет авторство самого комментария:
// владелец поста не может удалить чужой комментарий
func (p *postService) DeleteComment(ctx context.Context, postID, commentID, userID string) ([]models.Comment, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	var comment *models.Comment
	for i := range post.Comments {
		if post.Comments[i].CommentID == commentID {
			comment = &post.Comments[i]
			break
		}
	}

	if comment == nil {
		return nil, apperrors.NotFound("комментарий не найден")
	}

	if comment.AuthorID != userID {
		return nil, apperrors.Forbidden("комментарий принадлежит другому пользователю")
	}

	err = p.commentRepo.Remove(ctx, postID, commentID, post.Version)
	if err != nil {
		return nil, err
	}

	return p.commentRepo.GetByPostID(ctx, postID)
}

func likedBy(likes []models.Like, userID string) bool {
	for _, like := range likes {
		if like.UserID == userID {
			return true
		}
	}
	return false
}
