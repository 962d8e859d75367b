package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"socialnetCPT/internal/apperrors"
	"socialnetCPT/internal/models"
)

type commentRepository struct {
	db      *sqlx.DB
	timeout time.Duration
}

func NewCommentRepository(db *sqlx.DB, timeout time.Duration) CommentRepository {
	return &commentRepository{db: db, timeout: timeout}
}

func (r *commentRepository) Add(ctx context.Context, postID string, comment *models.Comment, version int64) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	if comment.CommentID == "" {
		comment.CommentID = uuid.New().String()
	}
	comment.CreatedAt = time.Now()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return storageError("начало транзакции", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO post_comments (comment_id, post_id, author_id, author_name, author_avatar, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = tx.ExecContext(ctx, query,
		comment.CommentID,
		postID,
		comment.AuthorID,
		comment.AuthorName,
		comment.AuthorAvatar,
		comment.Content,
		comment.CreatedAt,
	)
	if err != nil {
		return storageError("добавление комментария", err)
	}

	if err := bumpVersion(ctx, tx, postID, version); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return storageError("фиксация транзакции", err)
	}

	return nil
}

func (r *commentRepository) Remove(ctx context.Context, postID, commentID string, version int64) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return storageError("начало транзакции", err)
	}
	defer tx.Rollback()

	query := `DELETE FROM post_comments WHERE post_id = $1 AND comment_id = $2`

	result, err := tx.ExecContext(ctx, query, postID, commentID)
	if err != nil {
		return storageError("удаление комментария", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storageError("проверка удаленных строк", err)
	}

	if rowsAffected == 0 {
		return apperrors.NotFound("комментарий не найден")
	}

	if err := bumpVersion(ctx, tx, postID, version); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return storageError("фиксация транзакции", err)
	}

	return nil
}

func (r *commentRepository) GetByPostID(ctx context.Context, postID string) ([]models.Comment, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT comment_id, author_id, author_name, author_avatar, content, created_at
		FROM post_comments WHERE post_id = $1 ORDER BY seq DESC
	`

	comments := []models.Comment{}
	err := r.db.SelectContext(ctx, &comments, query, postID)
	if err != nil {
		return nil, storageError("получение комментариев", err)
	}

	return comments, nil
}
