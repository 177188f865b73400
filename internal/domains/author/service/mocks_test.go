package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"library-api/internal/domains/author/model"
	"library-api/internal/infrastructure/storage"
	"library-api/internal/shared/pagination"
)

// MockRepository mocks the author repository.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, page pagination.PageRequest) ([]model.Author, int64, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]model.Author), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) ListFiltered(ctx context.Context, filter model.AuthorFilter, page pagination.PageRequest) ([]model.Author, int64, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]model.Author), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64, includeBooks bool) (*model.Author, error) {
	args := m.Called(ctx, id, includeBooks)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Author), args.Error(1)
}

func (m *MockRepository) GetByIDs(ctx context.Context, ids []int64) ([]model.Author, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]model.Author), args.Error(1)
}

func (m *MockRepository) ExistingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockRepository) ExistsByIdentification(ctx context.Context, identification string) (bool, error) {
	args := m.Called(ctx, identification)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) ExistingIdentifications(ctx context.Context, identifications []string) ([]string, error) {
	args := m.Called(ctx, identifications)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, a *model.Author) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockRepository) CreateBatch(ctx context.Context, authors []model.Author) ([]model.Author, error) {
	args := m.Called(ctx, authors)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Author), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, a *model.Author) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockArchive mocks the archive storage port.
type MockArchive struct {
	mock.Mock
}

func (m *MockArchive) Store(ctx context.Context, container string, file storage.File) (string, error) {
	args := m.Called(ctx, container, file)
	return args.String(0), args.Error(1)
}

func (m *MockArchive) Remove(ctx context.Context, url, container string) error {
	args := m.Called(ctx, url, container)
	return args.Error(0)
}

func (m *MockArchive) Edit(ctx context.Context, oldURL, container string, file storage.File) (string, error) {
	args := m.Called(ctx, oldURL, container, file)
	return args.String(0), args.Error(1)
}
