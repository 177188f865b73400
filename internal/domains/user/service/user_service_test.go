package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"library-api/internal/domains/user/model"
	"library-api/internal/shared/result"
	"library-api/pkg/jwt"
)

func testTokens() *jwt.Manager {
	return jwt.NewManager("test-secret", "library-api", "library-clients", time.Hour)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestRegister_PasswordPolicy(t *testing.T) {
	svc := NewUserService(new(MockRepository), testTokens())

	res, err := svc.Register(context.Background(), model.CredentialsRequest{
		Email:    "new@example.com",
		Password: "abc",
	})

	require.NoError(t, err)
	assert.Equal(t, result.BadRequest, res.ErrorType())
	msgs := strings.Split(res.ErrorMessage(), "\n")
	assert.Equal(t, []string{
		"Passwords must be at least 6 characters.",
		"Passwords must have at least one non alphanumeric character.",
		"Passwords must have at least one digit ('0'-'9').",
		"Passwords must have at least one uppercase ('A'-'Z').",
	}, msgs)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetByEmail", mock.Anything, "taken@example.com").
		Return(&model.User{ID: uuid.New(), Email: "taken@example.com"}, nil)

	svc := NewUserService(repo, testTokens())
	res, err := svc.Register(context.Background(), model.CredentialsRequest{
		Email:    "taken@example.com",
		Password: "Str0ng!pass",
	})

	require.NoError(t, err)
	assert.Equal(t, result.BadRequest, res.ErrorType())
	assert.Equal(t, "Incorrect Registration", res.ErrorMessage())
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_IssuesToken(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetByEmail", mock.Anything, "new@example.com").
		Return(nil, model.ErrUserNotFound).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Email == "new@example.com" &&
			u.PasswordHash != "" &&
			u.PasswordHash != "Str0ng!pass"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.User).ID = uuid.New()
	}).Return(nil)
	repo.On("GetByEmail", mock.Anything, "new@example.com").
		Return(&model.User{ID: uuid.New(), Email: "new@example.com"}, nil)

	svc := NewUserService(repo, testTokens())
	res, err := svc.Register(context.Background(), model.CredentialsRequest{
		Email:    "new@example.com",
		Password: "Str0ng!pass",
	})

	require.NoError(t, err)
	require.True(t, res.IsSuccess())
	assert.NotEmpty(t, res.Data().Token)
	assert.True(t, res.Data().Expiration.After(time.Now()))
	repo.AssertExpectations(t)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetByEmail", mock.Anything, "ghost@example.com").
		Return(nil, model.ErrUserNotFound)

	svc := NewUserService(repo, testTokens())
	res, err := svc.Login(context.Background(), model.CredentialsRequest{
		Email:    "ghost@example.com",
		Password: "whatever1!A",
	})

	require.NoError(t, err)
	assert.Equal(t, result.BadRequest, res.ErrorType())
	assert.Equal(t, "Incorrect Login", res.ErrorMessage())
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetByEmail", mock.Anything, "reader@example.com").
		Return(&model.User{
			ID:           uuid.New(),
			Email:        "reader@example.com",
			PasswordHash: hashOf(t, "Right1!pass"),
		}, nil)

	svc := NewUserService(repo, testTokens())
	res, err := svc.Login(context.Background(), model.CredentialsRequest{
		Email:    "reader@example.com",
		Password: "Wrong1!pass",
	})

	require.NoError(t, err)
	assert.Equal(t, result.BadRequest, res.ErrorType())
	assert.Equal(t, "Incorrect Login", res.ErrorMessage())
}

func TestLogin_TokenCarriesGrants(t *testing.T) {
	tokens := testTokens()
	repo := new(MockRepository)
	repo.On("GetByEmail", mock.Anything, "admin@example.com").
		Return(&model.User{
			ID:           uuid.New(),
			Email:        "admin@example.com",
			PasswordHash: hashOf(t, "Right1!pass"),
			Claims:       []model.Claim{{Type: model.AdminClaimType, Value: "true"}},
		}, nil)

	svc := NewUserService(repo, tokens)
	res, err := svc.Login(context.Background(), model.CredentialsRequest{
		Email:    "admin@example.com",
		Password: "Right1!pass",
	})

	require.NoError(t, err)
	require.True(t, res.IsSuccess())

	claims, err := tokens.Validate(res.Data().Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "true", claims.Grants[model.AdminClaimType])
}

func TestRefreshToken_UnknownUser(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetByEmail", mock.Anything, "gone@example.com").
		Return(nil, model.ErrUserNotFound)

	svc := NewUserService(repo, testTokens())
	res, err := svc.RefreshToken(context.Background(), "gone@example.com")

	require.NoError(t, err)
	assert.Equal(t, result.NotFound, res.ErrorType())
	assert.Equal(t, "User not found", res.ErrorMessage())
}

func TestGetValidatedUser(t *testing.T) {
	repo := new(MockRepository)
	u := &model.User{ID: uuid.New(), Email: "reader@example.com"}
	repo.On("GetByEmail", mock.Anything, "reader@example.com").Return(u, nil)
	repo.On("GetByEmail", mock.Anything, "gone@example.com").Return(nil, model.ErrUserNotFound)

	svc := NewUserService(repo, testTokens())

	res, err := svc.GetValidatedUser(context.Background(), "reader@example.com")
	require.NoError(t, err)
	require.True(t, res.IsSuccess())
	assert.Equal(t, u.ID, res.Data().ID)

	res, err = svc.GetValidatedUser(context.Background(), "gone@example.com")
	require.NoError(t, err)
	assert.Equal(t, result.NotFound, res.ErrorType())
	assert.Equal(t, "User not found", res.ErrorMessage())
}

func TestMakeAdmin(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetByEmail", mock.Anything, "gone@example.com").
			Return(nil, model.ErrUserNotFound)

		svc := NewUserService(repo, testTokens())
		res, err := svc.MakeAdmin(context.Background(), model.EditClaimRequest{Email: "gone@example.com"})

		require.NoError(t, err)
		assert.Equal(t, result.NotFound, res.ErrorType())
		assert.Equal(t, "User not found", res.ErrorMessage())
	})

	t.Run("already admin", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetByEmail", mock.Anything, "admin@example.com").
			Return(&model.User{
				ID:     uuid.New(),
				Email:  "admin@example.com",
				Claims: []model.Claim{{Type: model.AdminClaimType, Value: "true"}},
			}, nil)

		svc := NewUserService(repo, testTokens())
		res, err := svc.MakeAdmin(context.Background(), model.EditClaimRequest{Email: "admin@example.com"})

		require.NoError(t, err)
		assert.Equal(t, result.BadRequest, res.ErrorType())
		assert.Equal(t, "User is already an admin", res.ErrorMessage())
		repo.AssertNotCalled(t, "AddClaim", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("grants claim", func(t *testing.T) {
		repo := new(MockRepository)
		userID := uuid.New()
		repo.On("GetByEmail", mock.Anything, "reader@example.com").
			Return(&model.User{ID: userID, Email: "reader@example.com"}, nil)
		repo.On("AddClaim", mock.Anything, userID, model.Claim{Type: model.AdminClaimType, Value: "true"}).
			Return(nil)

		svc := NewUserService(repo, testTokens())
		res, err := svc.MakeAdmin(context.Background(), model.EditClaimRequest{Email: "reader@example.com"})

		require.NoError(t, err)
		assert.True(t, res.IsSuccess())
		repo.AssertExpectations(t)
	})
}

func TestGetValidatedUser_RepoErrorPropagates(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetByEmail", mock.Anything, "reader@example.com").
		Return(nil, errors.New("connection refused"))

	svc := NewUserService(repo, testTokens())
	_, err := svc.GetValidatedUser(context.Background(), "reader@example.com")

	assert.EqualError(t, err, "connection refused")
}
