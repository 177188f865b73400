package service

import (
	"context"

	"github.com/google/uuid"

	"library-api/internal/domains/comment/model"
	usermodel "library-api/internal/domains/user/model"
	"library-api/internal/shared/result"
)

// Service - comment operations under a book
type Service interface {
	GetComments(ctx context.Context, bookID int64) (result.Result[[]model.CommentResponse], error)
	GetCommentsIncludingDeleted(ctx context.Context, bookID int64) (result.Result[[]model.CommentResponse], error)
	GetCommentByID(ctx context.Context, bookID int64, id uuid.UUID) (result.Result[model.CommentResponse], error)
	CreateComment(ctx context.Context, bookID int64, userEmail string, req model.CreateCommentRequest) (result.Result[model.CommentResponse], error)
	UpdateComment(ctx context.Context, bookID int64, id uuid.UUID, userEmail string, req model.UpdateCommentRequest) (result.Result[model.CommentResponse], error)
	DeleteComment(ctx context.Context, bookID int64, id uuid.UUID, userEmail string) (result.Result[result.Unit], error)
}

// BookChecker reports whether the parent book exists.
type BookChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// UserSource resolves the acting user from the authenticated email.
type UserSource interface {
	GetValidatedUser(ctx context.Context, email string) (result.Result[usermodel.User], error)
}
