package service

import (
	"context"
	"mime/multipart"

	"library-api/internal/domains/author/model"
	"library-api/internal/shared/pagination"
	"library-api/internal/shared/result"
)

// Service - single-author operations
type Service interface {
	GetAuthors(ctx context.Context, page pagination.PageRequest) (result.Result[pagination.PagedResult[model.AuthorResponse]], error)
	GetAuthorsWithFilter(ctx context.Context, filter model.AuthorFilter, page pagination.PageRequest) (result.Result[pagination.PagedResult[model.AuthorWithBooksResponse]], error)
	GetAuthorByID(ctx context.Context, id int64) (result.Result[model.AuthorWithBooksResponse], error)
	CreateAuthor(ctx context.Context, req model.CreateAuthorRequest, photo *multipart.FileHeader) (result.Result[model.AuthorResponse], error)
	UpdateAuthor(ctx context.Context, id int64, req model.UpdateAuthorRequest, photo *multipart.FileHeader) (result.Result[model.AuthorResponse], error)
	PatchAuthor(ctx context.Context, id int64, req model.PatchAuthorRequest) (result.Result[model.AuthorResponse], error)
	DeleteAuthor(ctx context.Context, id int64) (result.Result[result.Unit], error)
}

// CollectionService - operations over sets of authors
type CollectionService interface {
	GetAuthorsByIDs(ctx context.Context, csv string) (result.Result[[]model.AuthorResponse], error)
	CreateAuthors(ctx context.Context, reqs []model.CreateAuthorRequest) (result.Result[[]model.AuthorResponse], error)
}
