package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateCommentRequest carries a new comment's content.
type CreateCommentRequest struct {
	Content string `json:"content"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.Length(1, 2000),
		),
	)
}

// UpdateCommentRequest replaces a comment's content.
type UpdateCommentRequest struct {
	Content string `json:"content"`
}

func (r UpdateCommentRequest) Validate() error {
	return CreateCommentRequest(r).Validate()
}

// CommentResponse is the public comment shape.
type CommentResponse struct {
	ID          uuid.UUID `json:"id"`
	Content     string    `json:"content"`
	PublishedAt time.Time `json:"publishedAt"`
	BookID      int64     `json:"bookId"`
	UserID      uuid.UUID `json:"userId"`
}

func ToCommentResponse(c Comment) CommentResponse {
	return CommentResponse{
		ID:          c.ID,
		Content:     c.Content,
		PublishedAt: c.PublishedAt,
		BookID:      c.BookID,
		UserID:      c.UserID,
	}
}

func ToCommentResponses(comments []Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, ToCommentResponse(c))
	}
	return out
}
