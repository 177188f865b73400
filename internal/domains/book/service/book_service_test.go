package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"library-api/internal/domains/book/model"
	"library-api/internal/shared/pagination"
	"library-api/internal/shared/result"
)

func TestGetBooks_CachesList(t *testing.T) {
	repo := new(MockRepository)
	cache := newFakeCache()
	normalized := pagination.PageRequest{Page: 1, RecordsPerPage: 10}
	repo.On("List", mock.Anything, normalized).
		Return([]model.Book{{ID: 1, Title: "Dune"}}, int64(1), nil).
		Once()

	svc := NewBookService(repo, new(MockAuthorChecker), new(MockCommentSource), cache)

	res, err := svc.GetBooks(context.Background(), pagination.PageRequest{})
	require.NoError(t, err)
	require.True(t, res.IsSuccess())
	assert.True(t, cache.has("book:list:1:10"))

	// Second call is served from cache; the single Once expectation holds.
	res, err = svc.GetBooks(context.Background(), pagination.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Dune", res.Data().Data[0].Title)
	repo.AssertExpectations(t)
}

func TestGetBookByID_NotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, model.ErrBookNotFound)

	svc := NewBookService(repo, new(MockAuthorChecker), new(MockCommentSource), newFakeCache())
	res, err := svc.GetBookByID(context.Background(), 99)

	require.NoError(t, err)
	assert.Equal(t, result.NotFound, res.ErrorType())
	assert.Equal(t, "Book not found", res.ErrorMessage())
}

func TestGetBookByID_ComposesAuthorsAndComments(t *testing.T) {
	repo := new(MockRepository)
	comments := new(MockCommentSource)
	cache := newFakeCache()

	b := &model.Book{
		ID:    4,
		Title: "Good Omens",
		Authors: []model.AuthorRef{
			{AuthorID: 1, FirstName: "Terry", LastName: "Pratchett", Order: 0},
			{AuthorID: 2, FirstName: "Neil", LastName: "Gaiman", Order: 1},
		},
	}
	repo.On("GetByID", mock.Anything, int64(4)).Return(b, nil).Once()
	comments.On("ListForBook", mock.Anything, int64(4)).Return([]model.CommentSummary{}, nil).Once()

	svc := NewBookService(repo, new(MockAuthorChecker), comments, cache)
	res, err := svc.GetBookByID(context.Background(), 4)

	require.NoError(t, err)
	require.True(t, res.IsSuccess())
	detail := res.Data()
	require.Len(t, detail.Authors, 2)
	assert.Equal(t, 0, detail.Authors[0].Order)
	assert.Equal(t, 1, detail.Authors[1].Order)
	assert.NotNil(t, detail.Comments)
	assert.True(t, cache.has(DetailCacheKey(4)))

	// Cached read skips the repository.
	_, err = svc.GetBookByID(context.Background(), 4)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateBook_RequiresAuthors(t *testing.T) {
	svc := NewBookService(new(MockRepository), new(MockAuthorChecker), new(MockCommentSource), newFakeCache())

	res, err := svc.CreateBook(context.Background(), model.CreateBookRequest{Title: "Dune"})
	require.NoError(t, err)
	assert.Equal(t, result.BadRequest, res.ErrorType())
	assert.Equal(t, "At least one author is required", res.ErrorMessage())
}

func TestCreateBook_RequiresTitle(t *testing.T) {
	svc := NewBookService(new(MockRepository), new(MockAuthorChecker), new(MockCommentSource), newFakeCache())

	res, err := svc.CreateBook(context.Background(), model.CreateBookRequest{AuthorIDs: []int64{1}})
	require.NoError(t, err)
	assert.Equal(t, result.BadRequest, res.ErrorType())
}

func TestCreateBook_MissingAuthors(t *testing.T) {
	authors := new(MockAuthorChecker)
	authors.On("ExistingIDs", mock.Anything, []int64{1, 2, 3}).Return([]int64{2}, nil)

	svc := NewBookService(new(MockRepository), authors, new(MockCommentSource), newFakeCache())
	res, err := svc.CreateBook(context.Background(), model.CreateBookRequest{Title: "Dune", AuthorIDs: []int64{1, 2, 3}})

	require.NoError(t, err)
	assert.Equal(t, result.BadRequest, res.ErrorType())
	assert.Equal(t, "Authors not found 1, 3", res.ErrorMessage())
}

func TestCreateBook_DeduplicatesAuthorsPreservingOrder(t *testing.T) {
	repo := new(MockRepository)
	authors := new(MockAuthorChecker)
	cache := newFakeCache()
	cache.Set(context.Background(), "book:list:1:10", "stale", 0)

	authors.On("ExistingIDs", mock.Anything, []int64{2, 1}).Return([]int64{1, 2}, nil)
	repo.On("Create", mock.Anything, "Dune", []int64{2, 1}).
		Return(&model.Book{ID: 10, Title: "Dune"}, nil)

	svc := NewBookService(repo, authors, new(MockCommentSource), cache)
	res, err := svc.CreateBook(context.Background(), model.CreateBookRequest{
		Title:     "Dune",
		AuthorIDs: []int64{2, 1, 2, 0},
	})

	require.NoError(t, err)
	require.True(t, res.IsSuccess())
	assert.False(t, cache.has("book:list:1:10"), "list cache should be invalidated")
	repo.AssertExpectations(t)
}

func strptr(s string) *string { return &s }

func TestUpdateBook_NotFound(t *testing.T) {
	repo := new(MockRepository)
	authors := new(MockAuthorChecker)
	authors.On("ExistingIDs", mock.Anything, []int64{1}).Return([]int64{1}, nil)
	repo.On("Update", mock.Anything, int64(8), strptr("Dune"), []int64{1}).Return(nil, model.ErrBookNotFound)

	svc := NewBookService(repo, authors, new(MockCommentSource), newFakeCache())
	res, err := svc.UpdateBook(context.Background(), 8, model.UpdateBookRequest{Title: strptr("Dune"), AuthorIDs: []int64{1}})

	require.NoError(t, err)
	assert.Equal(t, result.NotFound, res.ErrorType())
}

func TestUpdateBook_TitleOnlyKeepsAuthors(t *testing.T) {
	repo := new(MockRepository)
	authors := new(MockAuthorChecker)
	comments := new(MockCommentSource)

	repo.On("Update", mock.Anything, int64(8), strptr("Dune Messiah"), []int64(nil)).
		Return(&model.Book{ID: 8, Title: "Dune Messiah", Authors: []model.AuthorRef{{AuthorID: 1, Order: 0}}}, nil)
	comments.On("ListForBook", mock.Anything, int64(8)).Return([]model.CommentSummary{}, nil)

	svc := NewBookService(repo, authors, comments, newFakeCache())
	res, err := svc.UpdateBook(context.Background(), 8, model.UpdateBookRequest{Title: strptr("Dune Messiah")})

	require.NoError(t, err)
	require.True(t, res.IsSuccess())
	assert.Len(t, res.Data().Authors, 1)
	authors.AssertNotCalled(t, "ExistingIDs", mock.Anything, mock.Anything)
}

func TestUpdateBook_EmptyAuthorListRejected(t *testing.T) {
	svc := NewBookService(new(MockRepository), new(MockAuthorChecker), new(MockCommentSource), newFakeCache())

	res, err := svc.UpdateBook(context.Background(), 8, model.UpdateBookRequest{AuthorIDs: []int64{}})

	require.NoError(t, err)
	assert.Equal(t, result.BadRequest, res.ErrorType())
}

func TestUpdateBook_InvalidatesDetailCache(t *testing.T) {
	repo := new(MockRepository)
	authors := new(MockAuthorChecker)
	comments := new(MockCommentSource)
	cache := newFakeCache()
	cache.Set(context.Background(), DetailCacheKey(8), "stale", 0)

	authors.On("ExistingIDs", mock.Anything, []int64{1}).Return([]int64{1}, nil)
	repo.On("Update", mock.Anything, int64(8), strptr("Dune"), []int64{1}).
		Return(&model.Book{ID: 8, Title: "Dune"}, nil)
	comments.On("ListForBook", mock.Anything, int64(8)).Return([]model.CommentSummary{}, nil)

	svc := NewBookService(repo, authors, comments, cache)
	res, err := svc.UpdateBook(context.Background(), 8, model.UpdateBookRequest{Title: strptr("Dune"), AuthorIDs: []int64{1}})

	require.NoError(t, err)
	assert.True(t, res.IsSuccess())
	assert.False(t, cache.has(DetailCacheKey(8)))
}

func TestDeleteBook(t *testing.T) {
	repo := new(MockRepository)
	cache := newFakeCache()
	cache.Set(context.Background(), DetailCacheKey(3), "stale", 0)
	repo.On("Delete", mock.Anything, int64(3)).Return(nil)

	svc := NewBookService(repo, new(MockAuthorChecker), new(MockCommentSource), cache)
	res, err := svc.DeleteBook(context.Background(), 3)

	require.NoError(t, err)
	assert.True(t, res.IsSuccess())
	assert.False(t, cache.has(DetailCacheKey(3)))
}

func TestDeleteBook_NotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Delete", mock.Anything, int64(3)).Return(model.ErrBookNotFound)

	svc := NewBookService(repo, new(MockAuthorChecker), new(MockCommentSource), newFakeCache())
	res, err := svc.DeleteBook(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, result.NotFound, res.ErrorType())
}

func TestGetBooks_RepositoryErrorPropagates(t *testing.T) {
	repo := new(MockRepository)
	repo.On("List", mock.Anything, mock.Anything).
		Return([]model.Book{}, int64(0), errors.New("connection refused"))

	svc := NewBookService(repo, new(MockAuthorChecker), new(MockCommentSource), newFakeCache())
	_, err := svc.GetBooks(context.Background(), pagination.PageRequest{})
	assert.Error(t, err)
}
