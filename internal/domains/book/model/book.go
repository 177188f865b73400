package model

import "errors"

var ErrBookNotFound = errors.New("book not found")

// Book is a catalogued title with its authors in display order.
type Book struct {
	ID      int64       `json:"id" db:"id"`
	Title   string      `json:"title" db:"title"`
	Authors []AuthorRef `json:"authors,omitempty"`
}

// AuthorRef is an author as seen from a book, carrying the author's
// position among the book's authors.
type AuthorRef struct {
	AuthorID  int64  `json:"authorId" db:"author_id"`
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
	Order     int    `json:"order" db:"position"`
}
