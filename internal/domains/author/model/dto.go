package model

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// OrderBy names a sortable author column.
type OrderBy string

const (
	OrderByFirstName OrderBy = "first_name"
	OrderByLastName  OrderBy = "last_name"
)

// Column returns the whitelisted column for ORDER BY, defaulting to first_name.
func (o OrderBy) Column() string {
	if o == OrderByLastName {
		return "last_name"
	}
	return "first_name"
}

func startsUppercase(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsUpper(r) {
		return fmt.Errorf("must start with an uppercase letter")
	}
	return nil
}

// CreateAuthorRequest carries the fields for a new author.
type CreateAuthorRequest struct {
	FirstName      string  `json:"firstName" form:"firstName"`
	LastName       string  `json:"lastName" form:"lastName"`
	Identification *string `json:"identification" form:"identification"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName,
			validation.Required.Error("first name is required"),
			validation.Length(1, 150),
			validation.By(startsUppercase),
		),
		validation.Field(&r.LastName,
			validation.Required.Error("last name is required"),
			validation.Length(1, 150),
			validation.By(startsUppercase),
		),
		validation.Field(&r.Identification, validation.Length(0, 50)),
	)
}

// UpdateAuthorRequest carries a full replacement of an author's fields.
type UpdateAuthorRequest struct {
	FirstName      string  `json:"firstName" form:"firstName"`
	LastName       string  `json:"lastName" form:"lastName"`
	Identification *string `json:"identification" form:"identification"`
}

func (r UpdateAuthorRequest) Validate() error {
	return CreateAuthorRequest(r).Validate()
}

// PatchAuthorRequest updates only the fields present in the payload.
// A nil field is left untouched; an empty Identification clears it.
type PatchAuthorRequest struct {
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	Identification *string `json:"identification"`
}

func (r PatchAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName,
			validation.NilOrNotEmpty.Error("first name cannot be empty"),
			validation.Length(1, 150),
			validation.By(startsUppercase),
		),
		validation.Field(&r.LastName,
			validation.NilOrNotEmpty.Error("last name cannot be empty"),
			validation.Length(1, 150),
			validation.By(startsUppercase),
		),
		validation.Field(&r.Identification, validation.Length(0, 50)),
	)
}

// AuthorFilter narrows and orders author listings.
type AuthorFilter struct {
	FirstName    string  `form:"firstName"`
	LastName     string  `form:"lastName"`
	HasBooks     *bool   `form:"hasBooks"`
	HasPhoto     *bool   `form:"hasPhoto"`
	IncludeBooks bool    `form:"includeBooks"`
	OrderBy      OrderBy `form:"orderBy"`
	Ascending    *bool   `form:"ascendingOrder"`
}

// AscendingOrder defaults to true when the query string omits it.
func (f AuthorFilter) AscendingOrder() bool {
	if f.Ascending == nil {
		return true
	}
	return *f.Ascending
}

func (f AuthorFilter) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.OrderBy, validation.In(OrderBy(""), OrderByFirstName, OrderByLastName).
			Error("orderBy must be first_name or last_name")),
	)
}

// AuthorResponse is the list/detail shape without books.
type AuthorResponse struct {
	ID             int64   `json:"id"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Identification *string `json:"identification"`
	PhotoURL       *string `json:"photoUrl"`
}

// AuthorBookResponse is a book as seen from an author, with its position.
type AuthorBookResponse struct {
	BookID int64  `json:"bookId"`
	Title  string `json:"title"`
	Order  int    `json:"order"`
}

// AuthorWithBooksResponse is the detail shape including authored books.
type AuthorWithBooksResponse struct {
	AuthorResponse
	Books []AuthorBookResponse `json:"books"`
}

func ToAuthorResponse(a Author) AuthorResponse {
	return AuthorResponse{
		ID:             a.ID,
		FirstName:      a.FirstName,
		LastName:       a.LastName,
		Identification: a.Identification,
		PhotoURL:       a.PhotoURL,
	}
}

func ToAuthorResponses(authors []Author) []AuthorResponse {
	out := make([]AuthorResponse, 0, len(authors))
	for _, a := range authors {
		out = append(out, ToAuthorResponse(a))
	}
	return out
}

func ToAuthorWithBooksResponse(a Author) AuthorWithBooksResponse {
	books := make([]AuthorBookResponse, 0, len(a.Books))
	for _, b := range a.Books {
		books = append(books, AuthorBookResponse{BookID: b.BookID, Title: b.Title, Order: b.Order})
	}
	return AuthorWithBooksResponse{AuthorResponse: ToAuthorResponse(a), Books: books}
}

func ToAuthorWithBooksResponses(authors []Author) []AuthorWithBooksResponse {
	out := make([]AuthorWithBooksResponse, 0, len(authors))
	for _, a := range authors {
		out = append(out, ToAuthorWithBooksResponse(a))
	}
	return out
}
