package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"library-api/internal/domains/author/model"
	"library-api/internal/shared/pagination"
	"library-api/internal/shared/query"
	"library-api/pkg/database"
)

// postgresRepository - Raw SQL with pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const authorColumns = "id, first_name, last_name, identification, photo_url"

func scanAuthor(row pgx.Row) (*model.Author, error) {
	var a model.Author
	if err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Identification, &a.PhotoURL); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) List(ctx context.Context, page pagination.PageRequest) ([]model.Author, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM authors").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count authors: %w", err)
	}

	sql := fmt.Sprintf(`
		SELECT %s
		FROM authors
		ORDER BY first_name ASC
		LIMIT $1 OFFSET $2
	`, authorColumns)

	rows, err := r.pool.Query(ctx, sql, page.RecordsPerPage, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list authors: %w", err)
	}
	defer rows.Close()

	authors, err := collectAuthors(rows)
	if err != nil {
		return nil, 0, err
	}
	return authors, total, nil
}

func (r *postgresRepository) ListFiltered(ctx context.Context, filter model.AuthorFilter, page pagination.PageRequest) ([]model.Author, int64, error) {
	b := query.New()
	if filter.FirstName != "" {
		b.Where("first_name ILIKE ?", "%"+filter.FirstName+"%")
	}
	if filter.LastName != "" {
		b.Where("last_name ILIKE ?", "%"+filter.LastName+"%")
	}
	if filter.HasBooks != nil {
		if *filter.HasBooks {
			b.Where("EXISTS (SELECT 1 FROM author_books ab WHERE ab.author_id = authors.id)")
		} else {
			b.Where("NOT EXISTS (SELECT 1 FROM author_books ab WHERE ab.author_id = authors.id)")
		}
	}
	if filter.HasPhoto != nil {
		if *filter.HasPhoto {
			b.Where("photo_url IS NOT NULL")
		} else {
			b.Where("photo_url IS NULL")
		}
	}
	b.OrderBy(filter.OrderBy.Column(), filter.AscendingOrder())
	b.Paginate(page)

	countSQL, countArgs := b.CountClauses()
	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM authors"+countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count filtered authors: %w", err)
	}

	clauses, args := b.Clauses()
	sql := fmt.Sprintf("SELECT %s FROM authors%s", authorColumns, clauses)
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list filtered authors: %w", err)
	}
	defer rows.Close()

	authors, err := collectAuthors(rows)
	if err != nil {
		return nil, 0, err
	}

	if filter.IncludeBooks && len(authors) > 0 {
		if err := r.loadBooks(ctx, authors); err != nil {
			return nil, 0, err
		}
	}
	return authors, total, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64, includeBooks bool) (*model.Author, error) {
	sql := fmt.Sprintf("SELECT %s FROM authors WHERE id = $1", authorColumns)
	a, err := scanAuthor(r.pool.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("get author %d: %w", id, err)
	}
	if includeBooks {
		authors := []model.Author{*a}
		if err := r.loadBooks(ctx, authors); err != nil {
			return nil, err
		}
		a = &authors[0]
	}
	return a, nil
}

func (r *postgresRepository) GetByIDs(ctx context.Context, ids []int64) ([]model.Author, error) {
	if len(ids) == 0 {
		return []model.Author{}, nil
	}
	sql := fmt.Sprintf("SELECT %s FROM authors WHERE id = ANY($1) ORDER BY first_name ASC", authorColumns)
	rows, err := r.pool.Query(ctx, sql, ids)
	if err != nil {
		return nil, fmt.Errorf("get authors by ids: %w", err)
	}
	defer rows.Close()
	return collectAuthors(rows)
}

func (r *postgresRepository) ExistingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, "SELECT id FROM authors WHERE id = ANY($1)", ids)
	if err != nil {
		return nil, fmt.Errorf("existing author ids: %w", err)
	}
	defer rows.Close()

	var found []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		found = append(found, id)
	}
	return found, rows.Err()
}

func (r *postgresRepository) ExistsByIdentification(ctx context.Context, identification string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM authors WHERE identification = $1)",
		identification,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check identification: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) ExistingIdentifications(ctx context.Context, identifications []string) ([]string, error) {
	if len(identifications) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx,
		"SELECT identification FROM authors WHERE identification = ANY($1)",
		identifications,
	)
	if err != nil {
		return nil, fmt.Errorf("existing identifications: %w", err)
	}
	defer rows.Close()

	var found []string
	for rows.Next() {
		var ident string
		if err := rows.Scan(&ident); err != nil {
			return nil, err
		}
		found = append(found, ident)
	}
	return found, rows.Err()
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO authors (first_name, last_name, identification, photo_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, a.FirstName, a.LastName, a.Identification, a.PhotoURL).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("create author: %w", err)
	}
	return nil
}

func (r *postgresRepository) CreateBatch(ctx context.Context, authors []model.Author) ([]model.Author, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) ([]model.Author, error) {
		created := make([]model.Author, 0, len(authors))
		for _, a := range authors {
			err := tx.QueryRow(ctx, `
				INSERT INTO authors (first_name, last_name, identification, photo_url)
				VALUES ($1, $2, $3, $4)
				RETURNING id
			`, a.FirstName, a.LastName, a.Identification, a.PhotoURL).Scan(&a.ID)
			if err != nil {
				return nil, fmt.Errorf("batch create author: %w", err)
			}
			created = append(created, a)
		}
		return created, nil
	})
}

func (r *postgresRepository) Update(ctx context.Context, a *model.Author) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE authors
		SET first_name = $1, last_name = $2, identification = $3, photo_url = $4
		WHERE id = $5
	`, a.FirstName, a.LastName, a.Identification, a.PhotoURL, a.ID)
	if err != nil {
		return fmt.Errorf("update author %d: %w", a.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrAuthorNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM authors WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete author %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrAuthorNotFound
	}
	return nil
}

// loadBooks attaches each author's books ordered by their position.
func (r *postgresRepository) loadBooks(ctx context.Context, authors []model.Author) error {
	ids := make([]int64, 0, len(authors))
	index := make(map[int64]*model.Author, len(authors))
	for i := range authors {
		authors[i].Books = []model.BookRef{}
		ids = append(ids, authors[i].ID)
		index[authors[i].ID] = &authors[i]
	}

	rows, err := r.pool.Query(ctx, `
		SELECT ab.author_id, array_agg(ab.book_id ORDER BY ab.position),
		       array_agg(b.title ORDER BY ab.position),
		       array_agg(ab.position ORDER BY ab.position)
		FROM author_books ab
		JOIN books b ON b.id = ab.book_id
		WHERE ab.author_id = ANY($1)
		GROUP BY ab.author_id
	`, ids)
	if err != nil {
		return fmt.Errorf("load author books: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var authorID int64
		var bookIDs pq.Int64Array
		var titles pq.StringArray
		var positions pq.Int64Array
		if err := rows.Scan(&authorID, &bookIDs, &titles, &positions); err != nil {
			return err
		}
		a := index[authorID]
		if a == nil {
			continue
		}
		for i := range bookIDs {
			a.Books = append(a.Books, model.BookRef{
				BookID: bookIDs[i],
				Title:  titles[i],
				Order:  int(positions[i]),
			})
		}
	}
	return rows.Err()
}

func collectAuthors(rows pgx.Rows) ([]model.Author, error) {
	authors := []model.Author{}
	for rows.Next() {
		var a model.Author
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Identification, &a.PhotoURL); err != nil {
			return nil, err
		}
		authors = append(authors, a)
	}
	return authors, rows.Err()
}
