package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrCommentNotFound = errors.New("comment not found")

// Comment belongs to a book. Deleted comments stay in storage with
// HasBeenDeleted set and disappear from default reads.
type Comment struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Content        string    `json:"content" db:"content"`
	PublishedAt    time.Time `json:"publishedAt" db:"published_at"`
	BookID         int64     `json:"bookId" db:"book_id"`
	UserID         uuid.UUID `json:"userId" db:"user_id"`
	HasBeenDeleted bool      `json:"-" db:"has_been_deleted"`
}
