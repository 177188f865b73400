package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"library-api/internal/domains/author/model"
	"library-api/internal/domains/author/repository"
	"library-api/internal/infrastructure/storage"
	"library-api/internal/shared/pagination"
	"library-api/internal/shared/result"
	"library-api/pkg/logger"
)

// PhotoContainer is the archive folder for author photos.
const PhotoContainer = "authors"

type authorService struct {
	repo    repository.Repository
	archive storage.Archive
	photos  *storage.PhotoProcessor
}

func NewAuthorService(repo repository.Repository, archive storage.Archive, photos *storage.PhotoProcessor) Service {
	return &authorService{repo: repo, archive: archive, photos: photos}
}

func (s *authorService) GetAuthors(ctx context.Context, page pagination.PageRequest) (result.Result[pagination.PagedResult[model.AuthorResponse]], error) {
	page = page.Normalize()

	authors, total, err := s.repo.List(ctx, page)
	if err != nil {
		return result.Result[pagination.PagedResult[model.AuthorResponse]]{}, err
	}

	paged := pagination.NewPagedResult(model.ToAuthorResponses(authors), total, page)
	return result.Success(paged), nil
}

func (s *authorService) GetAuthorsWithFilter(ctx context.Context, filter model.AuthorFilter, page pagination.PageRequest) (result.Result[pagination.PagedResult[model.AuthorWithBooksResponse]], error) {
	type paged = pagination.PagedResult[model.AuthorWithBooksResponse]

	if err := filter.Validate(); err != nil {
		return result.Failure[paged](result.BadRequest, err.Error()), nil
	}
	page = page.Normalize()

	authors, total, err := s.repo.ListFiltered(ctx, filter, page)
	if err != nil {
		return result.Result[paged]{}, err
	}

	return result.Success(pagination.NewPagedResult(model.ToAuthorWithBooksResponses(authors), total, page)), nil
}

func (s *authorService) GetAuthorByID(ctx context.Context, id int64) (result.Result[model.AuthorWithBooksResponse], error) {
	a, err := s.repo.GetByID(ctx, id, true)
	if err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			return result.Failure[model.AuthorWithBooksResponse](result.NotFound, "Author not found"), nil
		}
		return result.Result[model.AuthorWithBooksResponse]{}, err
	}
	return result.Success(model.ToAuthorWithBooksResponse(*a)), nil
}

func (s *authorService) CreateAuthor(ctx context.Context, req model.CreateAuthorRequest, photo *multipart.FileHeader) (result.Result[model.AuthorResponse], error) {
	if err := req.Validate(); err != nil {
		return result.Failure[model.AuthorResponse](result.BadRequest, err.Error()), nil
	}

	if req.Identification != nil && *req.Identification != "" {
		exists, err := s.repo.ExistsByIdentification(ctx, *req.Identification)
		if err != nil {
			return result.Result[model.AuthorResponse]{}, err
		}
		if exists {
			return result.Failure[model.AuthorResponse](result.BadRequest, "Author already exists"), nil
		}
	}

	a := model.Author{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Identification: normalizeIdentification(req.Identification),
	}

	if photo != nil {
		url, res, err := s.storePhoto(ctx, photo)
		if err != nil {
			return result.Result[model.AuthorResponse]{}, err
		}
		if !res.IsSuccess() {
			return result.FailureFrom[model.AuthorResponse](res), nil
		}
		a.PhotoURL = &url
	}

	if err := s.repo.Create(ctx, &a); err != nil {
		return result.Result[model.AuthorResponse]{}, err
	}
	return result.Success(model.ToAuthorResponse(a)), nil
}

func (s *authorService) UpdateAuthor(ctx context.Context, id int64, req model.UpdateAuthorRequest, photo *multipart.FileHeader) (result.Result[model.AuthorResponse], error) {
	if err := req.Validate(); err != nil {
		return result.Failure[model.AuthorResponse](result.BadRequest, err.Error()), nil
	}

	a, err := s.repo.GetByID(ctx, id, false)
	if err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			return result.Failure[model.AuthorResponse](result.NotFound, "Author not found"), nil
		}
		return result.Result[model.AuthorResponse]{}, err
	}

	a.FirstName = req.FirstName
	a.LastName = req.LastName
	a.Identification = normalizeIdentification(req.Identification)

	if photo != nil {
		data, res, err := s.readPhoto(photo)
		if err != nil {
			return result.Result[model.AuthorResponse]{}, err
		}
		if !res.IsSuccess() {
			return result.FailureFrom[model.AuthorResponse](res), nil
		}

		oldURL := ""
		if a.PhotoURL != nil {
			oldURL = *a.PhotoURL
		}
		url, err := s.archive.Edit(ctx, oldURL, PhotoContainer, storage.File{
			Name:        photo.Filename,
			ContentType: photo.Header.Get("Content-Type"),
			Data:        data,
		})
		if err != nil {
			return result.Result[model.AuthorResponse]{}, err
		}
		a.PhotoURL = &url
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return result.Result[model.AuthorResponse]{}, err
	}
	return result.Success(model.ToAuthorResponse(*a)), nil
}

func (s *authorService) PatchAuthor(ctx context.Context, id int64, req model.PatchAuthorRequest) (result.Result[model.AuthorResponse], error) {
	if err := req.Validate(); err != nil {
		return result.Failure[model.AuthorResponse](result.BadRequest, err.Error()), nil
	}

	a, err := s.repo.GetByID(ctx, id, false)
	if err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			return result.Failure[model.AuthorResponse](result.NotFound, "Author not found"), nil
		}
		return result.Result[model.AuthorResponse]{}, err
	}

	if req.FirstName != nil {
		a.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		a.LastName = *req.LastName
	}
	if req.Identification != nil {
		a.Identification = normalizeIdentification(req.Identification)
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return result.Result[model.AuthorResponse]{}, err
	}
	return result.Success(model.ToAuthorResponse(*a)), nil
}

func (s *authorService) DeleteAuthor(ctx context.Context, id int64) (result.Result[result.Unit], error) {
	a, err := s.repo.GetByID(ctx, id, false)
	if err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			return result.Failure[result.Unit](result.NotFound, "Author not found"), nil
		}
		return result.Result[result.Unit]{}, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return result.Result[result.Unit]{}, err
	}

	// Photo removal is best effort; the row is already gone.
	if a.PhotoURL != nil {
		if err := s.archive.Remove(ctx, *a.PhotoURL, PhotoContainer); err != nil {
			logger.Warn("failed to remove author photo", map[string]interface{}{
				"author_id": id,
				"error":     err.Error(),
			})
		}
	}
	return result.OK(), nil
}

// storePhoto validates, normalizes and stores an uploaded photo, returning its URL.
func (s *authorService) storePhoto(ctx context.Context, photo *multipart.FileHeader) (string, result.Result[result.Unit], error) {
	data, res, err := s.readPhoto(photo)
	if err != nil || !res.IsSuccess() {
		return "", res, err
	}

	url, err := s.archive.Store(ctx, PhotoContainer, storage.File{
		Name:        photo.Filename,
		ContentType: photo.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		return "", result.OK(), err
	}
	return url, result.OK(), nil
}

func (s *authorService) readPhoto(photo *multipart.FileHeader) ([]byte, result.Result[result.Unit], error) {
	f, err := photo.Open()
	if err != nil {
		return nil, result.OK(), fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, result.OK(), fmt.Errorf("read upload: %w", err)
	}

	if err := s.photos.Validate(data); err != nil {
		return nil, result.Failure[result.Unit](result.BadRequest, err.Error()), nil
	}
	normalized, err := s.photos.Normalize(data)
	if err != nil {
		return nil, result.Failure[result.Unit](result.BadRequest, err.Error()), nil
	}
	return normalized, result.OK(), nil
}

func normalizeIdentification(ident *string) *string {
	if ident == nil || *ident == "" {
		return nil
	}
	return ident
}
