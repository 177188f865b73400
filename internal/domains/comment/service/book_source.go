package service

import (
	"context"

	bookmodel "library-api/internal/domains/book/model"
	bookservice "library-api/internal/domains/book/service"
	"library-api/internal/domains/comment/repository"
)

// bookCommentSource feeds visible comments into book details.
type bookCommentSource struct {
	repo repository.Repository
}

func NewBookCommentSource(repo repository.Repository) bookservice.CommentSource {
	return &bookCommentSource{repo: repo}
}

func (s *bookCommentSource) ListForBook(ctx context.Context, bookID int64) ([]bookmodel.CommentSummary, error) {
	comments, err := s.repo.ListByBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	out := make([]bookmodel.CommentSummary, 0, len(comments))
	for _, c := range comments {
		out = append(out, bookmodel.CommentSummary{
			ID:          c.ID,
			Content:     c.Content,
			PublishedAt: c.PublishedAt,
			UserID:      c.UserID,
		})
	}
	return out, nil
}
