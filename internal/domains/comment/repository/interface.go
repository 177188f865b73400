package repository

import (
	"context"

	"github.com/google/uuid"

	"library-api/internal/domains/comment/model"
)

// Repository - comment persistence. Reads exclude soft-deleted rows
// unless the IncludeDeleted variant is used.
type Repository interface {
	ListByBook(ctx context.Context, bookID int64) ([]model.Comment, error)
	ListByBookIncludeDeleted(ctx context.Context, bookID int64) ([]model.Comment, error)
	GetByID(ctx context.Context, id uuid.UUID, bookID int64) (*model.Comment, error)
	Create(ctx context.Context, c *model.Comment) error
	Update(ctx context.Context, c *model.Comment) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
