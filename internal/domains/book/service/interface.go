package service

import (
	"context"

	"library-api/internal/domains/book/model"
	"library-api/internal/shared/pagination"
	"library-api/internal/shared/result"
)

// Service - book operations
type Service interface {
	GetBooks(ctx context.Context, page pagination.PageRequest) (result.Result[pagination.PagedResult[model.BookResponse]], error)
	GetBookByID(ctx context.Context, id int64) (result.Result[model.BookDetailResponse], error)
	CreateBook(ctx context.Context, req model.CreateBookRequest) (result.Result[model.BookDetailResponse], error)
	UpdateBook(ctx context.Context, id int64, req model.UpdateBookRequest) (result.Result[model.BookDetailResponse], error)
	DeleteBook(ctx context.Context, id int64) (result.Result[result.Unit], error)
}

// AuthorChecker reports which of the requested author ids exist.
type AuthorChecker interface {
	ExistingIDs(ctx context.Context, ids []int64) ([]int64, error)
}

// CommentSource supplies the visible comments for a book detail.
type CommentSource interface {
	ListForBook(ctx context.Context, bookID int64) ([]model.CommentSummary, error)
}
