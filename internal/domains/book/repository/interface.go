package repository

import (
	"context"

	"library-api/internal/domains/book/model"
	"library-api/internal/shared/pagination"
)

// Repository - book persistence operations
type Repository interface {
	List(ctx context.Context, page pagination.PageRequest) ([]model.Book, int64, error)
	GetByID(ctx context.Context, id int64) (*model.Book, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, title string, authorIDs []int64) (*model.Book, error)
	Update(ctx context.Context, id int64, title *string, authorIDs []int64) (*model.Book, error)
	Delete(ctx context.Context, id int64) error
}
