package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"library-api/internal/domains/comment/model"
	usermodel "library-api/internal/domains/user/model"
	"library-api/internal/shared/result"
)

// MockRepository mocks the comment repository.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListByBook(ctx context.Context, bookID int64) ([]model.Comment, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockRepository) ListByBookIncludeDeleted(ctx context.Context, bookID int64) ([]model.Comment, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID, bookID int64) (*model.Comment, error) {
	args := m.Called(ctx, id, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, c *model.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, c *model.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBookChecker mocks book existence lookups.
type MockBookChecker struct {
	mock.Mock
}

func (m *MockBookChecker) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockUserSource mocks acting-user resolution.
type MockUserSource struct {
	mock.Mock
}

func (m *MockUserSource) GetValidatedUser(ctx context.Context, email string) (result.Result[usermodel.User], error) {
	args := m.Called(ctx, email)
	return args.Get(0).(result.Result[usermodel.User]), args.Error(1)
}

// fakeCache records deletions so invalidation can be asserted.
type fakeCache struct {
	mu      sync.Mutex
	deleted []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleted = append(c.deleted, keys...)
	return nil
}

func (c *fakeCache) DeletePattern(ctx context.Context, pattern string) error { return nil }

func (c *fakeCache) Ping(ctx context.Context) error { return nil }

func (c *fakeCache) deletedKeys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string{}, c.deleted...)
}
