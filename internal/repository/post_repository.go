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

type postRepository struct {
	db      *sqlx.DB
	timeout time.Duration
}

func NewPostRepository(db *sqlx.DB, timeout time.Duration) PostRepository {
	return &postRepository{db: db, timeout: timeout}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}
	post.CreatedAt = time.Now()
	post.Version = 1

	query := `
		INSERT INTO posts (post_id, author_id, author_name, author_avatar, content, version, created_at)
		VALUES (:post_id, :author_id, :author_name, :author_avatar, :content, :version, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return storageError("создание поста", err)
	}

	if post.Likes == nil {
		post.Likes = []models.Like{}
	}
	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}

	return nil
}

func (r *postRepository) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var post models.Post

	query := `SELECT * FROM posts WHERE post_id = $1`

	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("пост не найден")
		}
		return nil, storageError("получение поста", err)
	}

	if err := r.loadChildren(ctx, &post); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepository) GetAll(ctx context.Context) ([]models.Post, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query := `SELECT * FROM posts ORDER BY created_at DESC`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, storageError("получение списка постов", err)
	}

	for i := range posts {
		if err := r.loadChildren(ctx, &posts[i]); err != nil {
			return nil, err
		}
	}

	if posts == nil {
		posts = []models.Post{}
	}

	return posts, nil
}

func (r *postRepository) Delete(ctx context.Context, postID string) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	// лайки и комментарии удаляются каскадом
	query := `DELETE FROM posts WHERE post_id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return storageError("удаление поста", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storageError("проверка удаленных строк", err)
	}

	if rowsAffected == 0 {
		return apperrors.NotFound("пост не найден")
	}

	return nil
}

// loadChildren подтягивает лайки и комментарии поста, новые первыми
func (r *postRepository) loadChildren(ctx context.Context, post *models.Post) error {
	likesQuery := `SELECT user_id, created_at FROM post_likes WHERE post_id = $1 ORDER BY seq DESC`

	post.Likes = []models.Like{}
	err := r.db.SelectContext(ctx, &post.Likes, likesQuery, post.PostID)
	if err != nil {
		return storageError("получение лайков поста", err)
	}

	commentsQuery := `
		SELECT comment_id, author_id, author_name, author_avatar, content, created_at
		FROM post_comments WHERE post_id = $1 ORDER BY seq DESC
	`

	post.Comments = []models.Comment{}
	err = r.db.SelectContext(ctx, &post.Comments, commentsQuery, post.PostID)
	if err != nil {
		return storageError("получение комментариев поста", err)
	}

	return nil
}
