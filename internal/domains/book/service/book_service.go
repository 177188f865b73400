package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"library-api/internal/domains/book/model"
	"library-api/internal/domains/book/repository"
	"library-api/internal/shared/pagination"
	"library-api/internal/shared/result"
	"library-api/pkg/cache"
	"library-api/pkg/logger"
)

const (
	detailCacheTTL = 10 * time.Minute
	listCacheTTL   = 5 * time.Minute
)

type bookService struct {
	repo     repository.Repository
	authors  AuthorChecker
	comments CommentSource
	cache    cache.Cache
}

func NewBookService(repo repository.Repository, authors AuthorChecker, comments CommentSource, c cache.Cache) Service {
	return &bookService{repo: repo, authors: authors, comments: comments, cache: c}
}

func (s *bookService) GetBooks(ctx context.Context, page pagination.PageRequest) (result.Result[pagination.PagedResult[model.BookResponse]], error) {
	type paged = pagination.PagedResult[model.BookResponse]
	page = page.Normalize()

	key := listCacheKey(page)
	var cached paged
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return result.Success(cached), nil
	}

	books, total, err := s.repo.List(ctx, page)
	if err != nil {
		return result.Result[paged]{}, err
	}

	res := pagination.NewPagedResult(model.ToBookResponses(books), total, page)
	if err := s.cache.Set(ctx, key, res, listCacheTTL); err != nil {
		logger.Warn("failed to cache book list", map[string]interface{}{"error": err.Error()})
	}
	return result.Success(res), nil
}

func (s *bookService) GetBookByID(ctx context.Context, id int64) (result.Result[model.BookDetailResponse], error) {
	key := DetailCacheKey(id)
	var cached model.BookDetailResponse
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return result.Success(cached), nil
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrBookNotFound) {
			return result.Failure[model.BookDetailResponse](result.NotFound, "Book not found"), nil
		}
		return result.Result[model.BookDetailResponse]{}, err
	}

	comments, err := s.comments.ListForBook(ctx, id)
	if err != nil {
		return result.Result[model.BookDetailResponse]{}, err
	}

	detail := model.ToBookDetailResponse(*b, comments)
	if err := s.cache.Set(ctx, key, detail, detailCacheTTL); err != nil {
		logger.Warn("failed to cache book detail", map[string]interface{}{"book_id": id, "error": err.Error()})
	}
	return result.Success(detail), nil
}

func (s *bookService) CreateBook(ctx context.Context, req model.CreateBookRequest) (result.Result[model.BookDetailResponse], error) {
	if err := req.Validate(); err != nil {
		return result.Failure[model.BookDetailResponse](result.BadRequest, err.Error()), nil
	}

	authorIDs := dedupeIDs(req.AuthorIDs)
	if res, err := s.checkAuthors(ctx, authorIDs); err != nil || !res.IsSuccess() {
		if err != nil {
			return result.Result[model.BookDetailResponse]{}, err
		}
		return result.FailureFrom[model.BookDetailResponse](res), nil
	}

	b, err := s.repo.Create(ctx, req.Title, authorIDs)
	if err != nil {
		return result.Result[model.BookDetailResponse]{}, err
	}

	s.invalidateLists(ctx)
	return result.Success(model.ToBookDetailResponse(*b, nil)), nil
}

func (s *bookService) UpdateBook(ctx context.Context, id int64, req model.UpdateBookRequest) (result.Result[model.BookDetailResponse], error) {
	if err := req.Validate(); err != nil {
		return result.Failure[model.BookDetailResponse](result.BadRequest, err.Error()), nil
	}

	// A nil author list means the associations stay as they are.
	var authorIDs []int64
	if req.AuthorIDs != nil {
		authorIDs = dedupeIDs(req.AuthorIDs)
		if res, err := s.checkAuthors(ctx, authorIDs); err != nil || !res.IsSuccess() {
			if err != nil {
				return result.Result[model.BookDetailResponse]{}, err
			}
			return result.FailureFrom[model.BookDetailResponse](res), nil
		}
	}

	b, err := s.repo.Update(ctx, id, req.Title, authorIDs)
	if err != nil {
		if errors.Is(err, model.ErrBookNotFound) {
			return result.Failure[model.BookDetailResponse](result.NotFound, "Book not found"), nil
		}
		return result.Result[model.BookDetailResponse]{}, err
	}

	s.invalidate(ctx, id)

	comments, err := s.comments.ListForBook(ctx, id)
	if err != nil {
		return result.Result[model.BookDetailResponse]{}, err
	}
	return result.Success(model.ToBookDetailResponse(*b, comments)), nil
}

func (s *bookService) DeleteBook(ctx context.Context, id int64) (result.Result[result.Unit], error) {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrBookNotFound) {
			return result.Failure[result.Unit](result.NotFound, "Book not found"), nil
		}
		return result.Result[result.Unit]{}, err
	}

	s.invalidate(ctx, id)
	return result.OK(), nil
}

// checkAuthors enforces a non-empty, fully existing author set.
func (s *bookService) checkAuthors(ctx context.Context, authorIDs []int64) (result.Result[result.Unit], error) {
	if len(authorIDs) == 0 {
		return result.Failure[result.Unit](result.BadRequest, "At least one author is required"), nil
	}

	existing, err := s.authors.ExistingIDs(ctx, authorIDs)
	if err != nil {
		return result.Result[result.Unit]{}, err
	}
	if len(existing) != len(authorIDs) {
		found := make(map[int64]bool, len(existing))
		for _, id := range existing {
			found[id] = true
		}
		var missing []string
		for _, id := range authorIDs {
			if !found[id] {
				missing = append(missing, strconv.FormatInt(id, 10))
			}
		}
		msg := fmt.Sprintf("Authors not found %s", strings.Join(missing, ", "))
		return result.Failure[result.Unit](result.BadRequest, msg), nil
	}
	return result.OK(), nil
}

func (s *bookService) invalidate(ctx context.Context, id int64) {
	if err := s.cache.Delete(ctx, DetailCacheKey(id)); err != nil {
		logger.Warn("failed to invalidate book detail cache", map[string]interface{}{"book_id": id, "error": err.Error()})
	}
	s.invalidateLists(ctx)
}

func (s *bookService) invalidateLists(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, "book:list:*"); err != nil {
		logger.Warn("failed to invalidate book list cache", map[string]interface{}{"error": err.Error()})
	}
}

// DetailCacheKey names the cached detail entry for a book. Collaborators
// that change what a detail renders use it to invalidate.
func DetailCacheKey(id int64) string {
	return fmt.Sprintf("book:detail:%d", id)
}

func listCacheKey(page pagination.PageRequest) string {
	return fmt.Sprintf("book:list:%d:%d", page.Page, page.RecordsPerPage)
}

// dedupeIDs keeps the first occurrence of each id, preserving order so
// author positions follow the request.
func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
