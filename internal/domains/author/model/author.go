package model

// Author is the domain entity backing the authors table.
type Author struct {
	ID             int64   `json:"id" db:"id"`
	FirstName      string  `json:"first_name" db:"first_name"`
	LastName       string  `json:"last_name" db:"last_name"`
	Identification *string `json:"identification" db:"identification"`
	PhotoURL       *string `json:"photo_url" db:"photo_url"`

	// Books holds the author's book links, loaded on demand.
	Books []BookRef `json:"books,omitempty"`
}

// BookRef is one side of the author/book join, ordered by the book's
// author list position.
type BookRef struct {
	BookID int64  `json:"book_id" db:"book_id"`
	Title  string `json:"title" db:"title"`
	Order  int    `json:"order" db:"position"`
}

// HasPhoto reports whether the author has a stored photo.
func (a *Author) HasPhoto() bool {
	return a.PhotoURL != nil && *a.PhotoURL != ""
}
