package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"library-api/internal/domains/author/model"
	"library-api/internal/shared/result"
)

func TestGetAuthorsByIDs_ParsesAndDeduplicates(t *testing.T) {
	repo := new(MockRepository)
	authors := []model.Author{
		{ID: 1, FirstName: "Jane", LastName: "Austen"},
		{ID: 2, FirstName: "Mark", LastName: "Twain"},
	}
	repo.On("GetByIDs", mock.Anything, []int64{1, 2}).Return(authors, nil)

	svc := NewCollectionService(repo)
	res, err := svc.GetAuthorsByIDs(context.Background(), " 1, banana, 2, 1, -4 ")

	require.NoError(t, err)
	require.True(t, res.IsSuccess())
	assert.Len(t, res.Data(), 2)
	repo.AssertExpectations(t)
}

func TestGetAuthorsByIDs_NoValidIDs(t *testing.T) {
	svc := NewCollectionService(new(MockRepository))

	for _, csv := range []string{"", "abc,def", "-1,0", " , "} {
		res, err := svc.GetAuthorsByIDs(context.Background(), csv)
		require.NoError(t, err)
		assert.False(t, res.IsSuccess())
		assert.Equal(t, result.BadRequest, res.ErrorType())
		assert.Equal(t, "No valid author IDs provided.", res.ErrorMessage())
	}
}

func TestGetAuthorsByIDs_MissingIDs(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetByIDs", mock.Anything, []int64{1, 2, 3}).
		Return([]model.Author{{ID: 2, FirstName: "Mark", LastName: "Twain"}}, nil)

	svc := NewCollectionService(repo)
	res, err := svc.GetAuthorsByIDs(context.Background(), "1,2,3")

	require.NoError(t, err)
	assert.False(t, res.IsSuccess())
	assert.Equal(t, result.NotFound, res.ErrorType())
	assert.Equal(t, "Some authors not found. Missing IDs: 1, 3", res.ErrorMessage())
}

func TestCreateAuthors_EmptyList(t *testing.T) {
	svc := NewCollectionService(new(MockRepository))
	res, err := svc.CreateAuthors(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, result.BadRequest, res.ErrorType())
	assert.Equal(t, "The list of authors cannot be empty.", res.ErrorMessage())
}

func TestCreateAuthors_InvalidEntry(t *testing.T) {
	svc := NewCollectionService(new(MockRepository))
	reqs := []model.CreateAuthorRequest{
		{FirstName: "Jane", LastName: "Austen"},
		{FirstName: "", LastName: "Twain"},
	}
	res, err := svc.CreateAuthors(context.Background(), reqs)

	require.NoError(t, err)
	assert.Equal(t, result.BadRequest, res.ErrorType())
	assert.Contains(t, res.ErrorMessage(), "author 2")
}

func TestCreateAuthors_DuplicateIdentificationsInInput(t *testing.T) {
	svc := NewCollectionService(new(MockRepository))
	reqs := []model.CreateAuthorRequest{
		{FirstName: "Jane", LastName: "Austen", Identification: strptr("DUP")},
		{FirstName: "Mark", LastName: "Twain", Identification: strptr("DUP")},
	}
	res, err := svc.CreateAuthors(context.Background(), reqs)

	require.NoError(t, err)
	assert.Equal(t, result.BadRequest, res.ErrorType())
	assert.Equal(t, "Duplicate identifications found in input: DUP", res.ErrorMessage())
}

func TestCreateAuthors_ExistingIdentifications(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ExistingIdentifications", mock.Anything, []string{"A", "B"}).
		Return([]string{"B"}, nil)

	svc := NewCollectionService(repo)
	reqs := []model.CreateAuthorRequest{
		{FirstName: "Jane", LastName: "Austen", Identification: strptr("A")},
		{FirstName: "Mark", LastName: "Twain", Identification: strptr("B")},
	}
	res, err := svc.CreateAuthors(context.Background(), reqs)

	require.NoError(t, err)
	assert.Equal(t, result.BadRequest, res.ErrorType())
	assert.Equal(t, "Some authors already exist with these identifications: B", res.ErrorMessage())
}

func TestCreateAuthors_Success(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ExistingIdentifications", mock.Anything, []string{"A"}).Return(nil, nil)
	repo.On("CreateBatch", mock.Anything, mock.MatchedBy(func(authors []model.Author) bool {
		return len(authors) == 2 && authors[1].Identification == nil
	})).Return([]model.Author{
		{ID: 1, FirstName: "Jane", LastName: "Austen", Identification: strptr("A")},
		{ID: 2, FirstName: "Mark", LastName: "Twain"},
	}, nil)

	svc := NewCollectionService(repo)
	reqs := []model.CreateAuthorRequest{
		{FirstName: "Jane", LastName: "Austen", Identification: strptr("A")},
		{FirstName: "Mark", LastName: "Twain"},
	}
	res, err := svc.CreateAuthors(context.Background(), reqs)

	require.NoError(t, err)
	require.True(t, res.IsSuccess())
	assert.Len(t, res.Data(), 2)
	repo.AssertExpectations(t)
}
