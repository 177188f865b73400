package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-api/internal/domains/comment/model"
)

// postgresRepository - Raw SQL with pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const commentColumns = "id, content, published_at, book_id, user_id, has_been_deleted"

func (r *postgresRepository) ListByBook(ctx context.Context, bookID int64) ([]model.Comment, error) {
	return r.list(ctx, bookID, false)
}

func (r *postgresRepository) ListByBookIncludeDeleted(ctx context.Context, bookID int64) ([]model.Comment, error) {
	return r.list(ctx, bookID, true)
}

func (r *postgresRepository) list(ctx context.Context, bookID int64, includeDeleted bool) ([]model.Comment, error) {
	predicate := "book_id = $1 AND has_been_deleted = false"
	if includeDeleted {
		predicate = "book_id = $1"
	}
	sql := fmt.Sprintf(`
		SELECT %s
		FROM comments
		WHERE %s
		ORDER BY published_at DESC
	`, commentColumns, predicate)

	rows, err := r.pool.Query(ctx, sql, bookID)
	if err != nil {
		return nil, fmt.Errorf("list comments for book %d: %w", bookID, err)
	}
	defer rows.Close()

	comments := []model.Comment{}
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.Content, &c.PublishedAt, &c.BookID, &c.UserID, &c.HasBeenDeleted); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID, bookID int64) (*model.Comment, error) {
	sql := fmt.Sprintf(`
		SELECT %s
		FROM comments
		WHERE id = $1 AND book_id = $2 AND has_been_deleted = false
	`, commentColumns)

	var c model.Comment
	err := r.pool.QueryRow(ctx, sql, id, bookID).
		Scan(&c.ID, &c.Content, &c.PublishedAt, &c.BookID, &c.UserID, &c.HasBeenDeleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCommentNotFound
		}
		return nil, fmt.Errorf("get comment %s: %w", id, err)
	}
	return &c, nil
}

func (r *postgresRepository) Create(ctx context.Context, c *model.Comment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO comments (id, content, published_at, book_id, user_id, has_been_deleted)
		VALUES ($1, $2, $3, $4, $5, false)
	`, c.ID, c.Content, c.PublishedAt, c.BookID, c.UserID)
	if err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, c *model.Comment) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE comments
		SET content = $1
		WHERE id = $2 AND has_been_deleted = false
	`, c.Content, c.ID)
	if err != nil {
		return fmt.Errorf("update comment %s: %w", c.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCommentNotFound
	}
	return nil
}

func (r *postgresRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE comments
		SET has_been_deleted = true
		WHERE id = $1 AND has_been_deleted = false
	`, id)
	if err != nil {
		return fmt.Errorf("delete comment %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCommentNotFound
	}
	return nil
}
