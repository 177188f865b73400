package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	bookservice "library-api/internal/domains/book/service"
	"library-api/internal/domains/comment/model"
	"library-api/internal/domains/comment/repository"
	"library-api/internal/shared/result"
	"library-api/pkg/cache"
	"library-api/pkg/logger"
)

type commentService struct {
	repo  repository.Repository
	books BookChecker
	users UserSource
	cache cache.Cache
}

func NewCommentService(repo repository.Repository, books BookChecker, users UserSource, c cache.Cache) Service {
	return &commentService{repo: repo, books: books, users: users, cache: c}
}

func (s *commentService) GetComments(ctx context.Context, bookID int64) (result.Result[[]model.CommentResponse], error) {
	return s.listComments(ctx, bookID, false)
}

func (s *commentService) GetCommentsIncludingDeleted(ctx context.Context, bookID int64) (result.Result[[]model.CommentResponse], error) {
	return s.listComments(ctx, bookID, true)
}

func (s *commentService) listComments(ctx context.Context, bookID int64, includeDeleted bool) (result.Result[[]model.CommentResponse], error) {
	if res, err := s.checkBook(ctx, bookID); err != nil || !res.IsSuccess() {
		if err != nil {
			return result.Result[[]model.CommentResponse]{}, err
		}
		return result.FailureFrom[[]model.CommentResponse](res), nil
	}

	var (
		comments []model.Comment
		err      error
	)
	if includeDeleted {
		comments, err = s.repo.ListByBookIncludeDeleted(ctx, bookID)
	} else {
		comments, err = s.repo.ListByBook(ctx, bookID)
	}
	if err != nil {
		return result.Result[[]model.CommentResponse]{}, err
	}
	return result.Success(model.ToCommentResponses(comments)), nil
}

func (s *commentService) GetCommentByID(ctx context.Context, bookID int64, id uuid.UUID) (result.Result[model.CommentResponse], error) {
	if res, err := s.checkBook(ctx, bookID); err != nil || !res.IsSuccess() {
		if err != nil {
			return result.Result[model.CommentResponse]{}, err
		}
		return result.FailureFrom[model.CommentResponse](res), nil
	}

	c, err := s.repo.GetByID(ctx, id, bookID)
	if err != nil {
		if errors.Is(err, model.ErrCommentNotFound) {
			return result.Failure[model.CommentResponse](result.NotFound, "Comment not found"), nil
		}
		return result.Result[model.CommentResponse]{}, err
	}
	return result.Success(model.ToCommentResponse(*c)), nil
}

func (s *commentService) CreateComment(ctx context.Context, bookID int64, userEmail string, req model.CreateCommentRequest) (result.Result[model.CommentResponse], error) {
	if err := req.Validate(); err != nil {
		return result.Failure[model.CommentResponse](result.BadRequest, err.Error()), nil
	}

	if res, err := s.checkBook(ctx, bookID); err != nil || !res.IsSuccess() {
		if err != nil {
			return result.Result[model.CommentResponse]{}, err
		}
		return result.FailureFrom[model.CommentResponse](res), nil
	}

	userRes, err := s.users.GetValidatedUser(ctx, userEmail)
	if err != nil {
		return result.Result[model.CommentResponse]{}, err
	}
	if !userRes.IsSuccess() {
		return result.FailureFrom[model.CommentResponse](userRes), nil
	}

	c := model.Comment{
		ID:          uuid.New(),
		Content:     req.Content,
		PublishedAt: time.Now().UTC(),
		BookID:      bookID,
		UserID:      userRes.Data().ID,
	}
	if err := s.repo.Create(ctx, &c); err != nil {
		return result.Result[model.CommentResponse]{}, err
	}

	s.invalidateBookDetail(ctx, bookID)
	return result.Success(model.ToCommentResponse(c)), nil
}

func (s *commentService) UpdateComment(ctx context.Context, bookID int64, id uuid.UUID, userEmail string, req model.UpdateCommentRequest) (result.Result[model.CommentResponse], error) {
	if err := req.Validate(); err != nil {
		return result.Failure[model.CommentResponse](result.BadRequest, err.Error()), nil
	}

	c, res, err := s.ownedComment(ctx, bookID, id, userEmail, "You cannot edit another user's comment")
	if err != nil {
		return result.Result[model.CommentResponse]{}, err
	}
	if !res.IsSuccess() {
		return result.FailureFrom[model.CommentResponse](res), nil
	}

	c.Content = req.Content
	if err := s.repo.Update(ctx, c); err != nil {
		return result.Result[model.CommentResponse]{}, err
	}

	s.invalidateBookDetail(ctx, bookID)
	return result.Success(model.ToCommentResponse(*c)), nil
}

func (s *commentService) DeleteComment(ctx context.Context, bookID int64, id uuid.UUID, userEmail string) (result.Result[result.Unit], error) {
	c, res, err := s.ownedComment(ctx, bookID, id, userEmail, "You cannot delete another user's comment")
	if err != nil {
		return result.Result[result.Unit]{}, err
	}
	if !res.IsSuccess() {
		return res, nil
	}

	if err := s.repo.SoftDelete(ctx, c.ID); err != nil {
		return result.Result[result.Unit]{}, err
	}

	s.invalidateBookDetail(ctx, bookID)
	return result.OK(), nil
}

// ownedComment resolves the acting user and the comment, then enforces
// ownership with the given refusal message.
func (s *commentService) ownedComment(ctx context.Context, bookID int64, id uuid.UUID, userEmail, refusal string) (*model.Comment, result.Result[result.Unit], error) {
	if res, err := s.checkBook(ctx, bookID); err != nil || !res.IsSuccess() {
		return nil, res, err
	}

	userRes, err := s.users.GetValidatedUser(ctx, userEmail)
	if err != nil {
		return nil, result.OK(), err
	}
	if !userRes.IsSuccess() {
		return nil, result.FailureFrom[result.Unit](userRes), nil
	}

	c, err := s.repo.GetByID(ctx, id, bookID)
	if err != nil {
		if errors.Is(err, model.ErrCommentNotFound) {
			return nil, result.Failure[result.Unit](result.NotFound, "Comment not found"), nil
		}
		return nil, result.OK(), err
	}

	if c.UserID != userRes.Data().ID {
		return nil, result.Failure[result.Unit](result.Forbidden, refusal), nil
	}
	return c, result.OK(), nil
}

func (s *commentService) checkBook(ctx context.Context, bookID int64) (result.Result[result.Unit], error) {
	exists, err := s.books.Exists(ctx, bookID)
	if err != nil {
		return result.Result[result.Unit]{}, err
	}
	if !exists {
		return result.Failure[result.Unit](result.NotFound, "Book not found"), nil
	}
	return result.OK(), nil
}

func (s *commentService) invalidateBookDetail(ctx context.Context, bookID int64) {
	if err := s.cache.Delete(ctx, bookservice.DetailCacheKey(bookID)); err != nil {
		logger.Warn("failed to invalidate book detail cache", map[string]interface{}{
			"book_id": bookID,
			"error":   err.Error(),
		})
	}
}
