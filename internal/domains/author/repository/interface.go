package repository

import (
	"context"

	"library-api/internal/domains/author/model"
	"library-api/internal/shared/pagination"
)

// Repository - author persistence operations
type Repository interface {
	List(ctx context.Context, page pagination.PageRequest) ([]model.Author, int64, error)
	ListFiltered(ctx context.Context, filter model.AuthorFilter, page pagination.PageRequest) ([]model.Author, int64, error)
	GetByID(ctx context.Context, id int64, includeBooks bool) (*model.Author, error)
	GetByIDs(ctx context.Context, ids []int64) ([]model.Author, error)
	ExistingIDs(ctx context.Context, ids []int64) ([]int64, error)
	ExistsByIdentification(ctx context.Context, identification string) (bool, error)
	ExistingIdentifications(ctx context.Context, identifications []string) ([]string, error)
	Create(ctx context.Context, a *model.Author) error
	CreateBatch(ctx context.Context, authors []model.Author) ([]model.Author, error)
	Update(ctx context.Context, a *model.Author) error
	Delete(ctx context.Context, id int64) error
}
