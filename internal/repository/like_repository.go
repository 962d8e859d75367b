package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"socialnetCPT/internal/apperrors"
	"socialnetCPT/internal/models"
)

type likeRepository struct {
	db      *sqlx.DB
	timeout time.Duration
}

func NewLikeRepository(db *sqlx.DB, timeout time.Duration) LikeRepository {
	return &likeRepository{db: db, timeout: timeout}
}

func (r *likeRepository) Add(ctx context.Context, postID, userID string, version int64) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return storageError("начало транзакции", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO post_likes (post_id, user_id, created_at) VALUES ($1, $2, $3)`

	_, err = tx.ExecContext(ctx, query, postID, userID, time.Now())
	if err != nil {
		// UNIQUE(post_id, user_id) страхует проверку в сервисе от гонки двух лайков
		if isUniqueViolation(err) {
			return apperrors.Conflict("пост уже отмечен")
		}
		return storageError("добавление лайка", err)
	}

	if err := bumpVersion(ctx, tx, postID, version); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return storageError("фиксация транзакции", err)
	}

	return nil
}

func (r *likeRepository) Remove(ctx context.Context, postID, userID string, version int64) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return storageError("начало транзакции", err)
	}
	defer tx.Rollback()

	query := `DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`

	result, err := tx.ExecContext(ctx, query, postID, userID)
	if err != nil {
		return storageError("удаление лайка", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storageError("проверка удаленных строк", err)
	}

	if rowsAffected == 0 {
		return apperrors.Conflict("пост не был отмечен")
	}

	if err := bumpVersion(ctx, tx, postID, version); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return storageError("фиксация транзакции", err)
	}

	return nil
}

func (r *likeRepository) GetByPostID(ctx context.Context, postID string) ([]models.Like, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query := `SELECT user_id, created_at FROM post_likes WHERE post_id = $1 ORDER BY seq DESC`

	likes := []models.Like{}
	err := r.db.SelectContext(ctx, &likes, query, postID)
	if err != nil {
		return nil, storageError("получение лайков", err)
	}

	return likes, nil
}

// bumpVersion увеличивает версию агрегата; устаревшая версия означает,
// что пост параллельно изменили или удалили
func bumpVersion(ctx context.Context, tx *sqlx.Tx, postID string, version int64) error {
	query := `UPDATE posts SET version = version + 1 WHERE post_id = $1 AND version = $2`

	result, err := tx.ExecContext(ctx, query, postID, version)
	if err != nil {
		return storageError("обновление версии поста", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storageError("проверка обновленных строк", err)
	}

	if rowsAffected == 0 {
		return apperrors.Conflict("пост был изменен параллельно, повторите запрос")
	}

	return nil
}
