package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateBookRequest carries the fields for a new book. Authors keep the
// order they arrive in.
type CreateBookRequest struct {
	Title     string  `json:"title"`
	AuthorIDs []int64 `json:"authorIds"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 200),
		),
	)
}

// UpdateBookRequest changes only the fields it carries: a nil title keeps
// the current one, an absent author list keeps the current associations.
// Sending an empty author list is rejected; books always have authors.
type UpdateBookRequest struct {
	Title     *string `json:"title"`
	AuthorIDs []int64 `json:"authorIds"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title cannot be empty"),
			validation.Length(1, 200),
		),
		validation.Field(&r.AuthorIDs, validation.By(func(interface{}) error {
			if r.AuthorIDs != nil && len(r.AuthorIDs) == 0 {
				return errors.New("authorIds cannot be empty")
			}
			return nil
		})),
	)
}

// BookResponse is the list shape.
type BookResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// BookAuthorResponse is an author as rendered inside a book payload.
type BookAuthorResponse struct {
	AuthorID  int64  `json:"authorId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Order     int    `json:"order"`
}

// CommentSummary is the comment shape embedded in a book detail.
type CommentSummary struct {
	ID          uuid.UUID `json:"id"`
	Content     string    `json:"content"`
	PublishedAt time.Time `json:"publishedAt"`
	UserID      uuid.UUID `json:"userId"`
}

// BookDetailResponse is the detail shape with ordered authors and
// visible comments.
type BookDetailResponse struct {
	ID       int64                `json:"id"`
	Title    string               `json:"title"`
	Authors  []BookAuthorResponse `json:"authors"`
	Comments []CommentSummary     `json:"comments"`
}

func ToBookResponse(b Book) BookResponse {
	return BookResponse{ID: b.ID, Title: b.Title}
}

func ToBookResponses(books []Book) []BookResponse {
	out := make([]BookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, ToBookResponse(b))
	}
	return out
}

func ToBookDetailResponse(b Book, comments []CommentSummary) BookDetailResponse {
	authors := make([]BookAuthorResponse, 0, len(b.Authors))
	for _, a := range b.Authors {
		authors = append(authors, BookAuthorResponse{
			AuthorID:  a.AuthorID,
			FirstName: a.FirstName,
			LastName:  a.LastName,
			Order:     a.Order,
		})
	}
	if comments == nil {
		comments = []CommentSummary{}
	}
	return BookDetailResponse{ID: b.ID, Title: b.Title, Authors: authors, Comments: comments}
}
