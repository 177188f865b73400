package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-api/internal/domains/book/model"
	"library-api/internal/shared/pagination"
	"library-api/pkg/database"
)

// postgresRepository - Raw SQL with pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context, page pagination.PageRequest) ([]model.Book, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM books").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, title
		FROM books
		ORDER BY title ASC
		LIMIT $1 OFFSET $2
	`, page.RecordsPerPage, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	books := []model.Book{}
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Title); err != nil {
			return nil, 0, err
		}
		books = append(books, b)
	}
	return books, total, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	var b model.Book
	err := r.pool.QueryRow(ctx, "SELECT id, title FROM books WHERE id = $1", id).Scan(&b.ID, &b.Title)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("get book %d: %w", id, err)
	}

	authors, err := r.bookAuthors(ctx, r.pool, id)
	if err != nil {
		return nil, err
	}
	b.Authors = authors
	return &b, nil
}

func (r *postgresRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check book %d: %w", id, err)
	}
	return exists, nil
}

func (r *postgresRepository) Create(ctx context.Context, title string, authorIDs []int64) (*model.Book, error) {
	id, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (int64, error) {
		var bookID int64
		if err := tx.QueryRow(ctx, "INSERT INTO books (title) VALUES ($1) RETURNING id", title).Scan(&bookID); err != nil {
			return 0, fmt.Errorf("create book: %w", err)
		}
		if err := linkAuthors(ctx, tx, bookID, authorIDs); err != nil {
			return 0, err
		}
		return bookID, nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Update changes only what it is given: a nil title keeps the stored one,
// a nil author list keeps the stored links. A non-nil author list rewrites
// the links with fresh dense positions.
func (r *postgresRepository) Update(ctx context.Context, id int64, title *string, authorIDs []int64) (*model.Book, error) {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)", id).Scan(&exists); err != nil {
			return fmt.Errorf("check book %d: %w", id, err)
		}
		if !exists {
			return model.ErrBookNotFound
		}

		if title != nil {
			if _, err := tx.Exec(ctx, "UPDATE books SET title = $1 WHERE id = $2", *title, id); err != nil {
				return fmt.Errorf("update book %d: %w", id, err)
			}
		}

		if authorIDs == nil {
			return nil
		}
		if _, err := tx.Exec(ctx, "DELETE FROM author_books WHERE book_id = $1", id); err != nil {
			return fmt.Errorf("clear book authors: %w", err)
		}
		return linkAuthors(ctx, tx, id, authorIDs)
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM books WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete book %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}
	return nil
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (r *postgresRepository) bookAuthors(ctx context.Context, q querier, bookID int64) ([]model.AuthorRef, error) {
	rows, err := q.Query(ctx, `
		SELECT ab.author_id, a.first_name, a.last_name, ab.position
		FROM author_books ab
		JOIN authors a ON a.id = ab.author_id
		WHERE ab.book_id = $1
		ORDER BY ab.position ASC
	`, bookID)
	if err != nil {
		return nil, fmt.Errorf("load book authors: %w", err)
	}
	defer rows.Close()

	authors := []model.AuthorRef{}
	for rows.Next() {
		var ref model.AuthorRef
		if err := rows.Scan(&ref.AuthorID, &ref.FirstName, &ref.LastName, &ref.Order); err != nil {
			return nil, err
		}
		authors = append(authors, ref)
	}
	return authors, rows.Err()
}

// linkAuthors writes the author links with dense positions 0..n-1 in the
// order the ids arrived.
func linkAuthors(ctx context.Context, tx pgx.Tx, bookID int64, authorIDs []int64) error {
	for position, authorID := range authorIDs {
		_, err := tx.Exec(ctx, `
			INSERT INTO author_books (author_id, book_id, position)
			VALUES ($1, $2, $3)
		`, authorID, bookID, position)
		if err != nil {
			return fmt.Errorf("link author %d to book %d: %w", authorID, bookID, err)
		}
	}
	return nil
}
