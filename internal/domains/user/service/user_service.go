package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"library-api/internal/domains/user/model"
	"library-api/internal/domains/user/repository"
	"library-api/internal/shared/result"
	"library-api/pkg/jwt"
)

type userService struct {
	repo   repository.Repository
	tokens *jwt.Manager
}

func NewUserService(repo repository.Repository, tokens *jwt.Manager) Service {
	return &userService{repo: repo, tokens: tokens}
}

func (s *userService) GetValidatedUser(ctx context.Context, email string) (result.Result[model.User], error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return result.Failure[model.User](result.NotFound, "User not found"), nil
		}
		return result.Result[model.User]{}, err
	}
	return result.Success(*u), nil
}

func (s *userService) GetValidatedUserByID(ctx context.Context, id uuid.UUID) (result.Result[model.User], error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return result.Failure[model.User](result.NotFound, "User not found"), nil
		}
		return result.Result[model.User]{}, err
	}
	return result.Success(*u), nil
}

func (s *userService) Register(ctx context.Context, req model.CredentialsRequest) (result.Result[model.AuthenticationResponse], error) {
	if err := req.Validate(); err != nil {
		return result.Failure[model.AuthenticationResponse](result.BadRequest, err.Error()), nil
	}
	if msg := model.ValidatePassword(req.Password); msg != "" {
		return result.Failure[model.AuthenticationResponse](result.BadRequest, msg), nil
	}

	_, err := s.repo.GetByEmail(ctx, req.Email)
	if err == nil {
		return result.Failure[model.AuthenticationResponse](result.BadRequest, "Incorrect Registration"), nil
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return result.Result[model.AuthenticationResponse]{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return result.Result[model.AuthenticationResponse]{}, err
	}

	u := model.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		BirthDate:    req.BirthDate,
	}
	if err := s.repo.Create(ctx, &u); err != nil {
		return result.Result[model.AuthenticationResponse]{}, err
	}

	return s.issueToken(ctx, u.Email)
}

func (s *userService) Login(ctx context.Context, req model.CredentialsRequest) (result.Result[model.AuthenticationResponse], error) {
	if err := req.Validate(); err != nil {
		return result.Failure[model.AuthenticationResponse](result.BadRequest, err.Error()), nil
	}

	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return result.Failure[model.AuthenticationResponse](result.BadRequest, "Incorrect Login"), nil
		}
		return result.Result[model.AuthenticationResponse]{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return result.Failure[model.AuthenticationResponse](result.BadRequest, "Incorrect Login"), nil
	}

	return s.issueToken(ctx, u.Email)
}

func (s *userService) RefreshToken(ctx context.Context, email string) (result.Result[model.AuthenticationResponse], error) {
	_, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return result.Failure[model.AuthenticationResponse](result.NotFound, "User not found"), nil
		}
		return result.Result[model.AuthenticationResponse]{}, err
	}
	return s.issueToken(ctx, email)
}

func (s *userService) MakeAdmin(ctx context.Context, req model.EditClaimRequest) (result.Result[result.Unit], error) {
	if err := req.Validate(); err != nil {
		return result.Failure[result.Unit](result.BadRequest, err.Error()), nil
	}

	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return result.Failure[result.Unit](result.NotFound, "User not found"), nil
		}
		return result.Result[result.Unit]{}, err
	}

	if u.IsAdmin() {
		return result.Failure[result.Unit](result.BadRequest, "User is already an admin"), nil
	}

	claim := model.Claim{Type: model.AdminClaimType, Value: "true"}
	if err := s.repo.AddClaim(ctx, u.ID, claim); err != nil {
		return result.Result[result.Unit]{}, err
	}
	return result.OK(), nil
}

func (s *userService) issueToken(ctx context.Context, email string) (result.Result[model.AuthenticationResponse], error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return result.Result[model.AuthenticationResponse]{}, err
	}

	token, expiration, err := s.tokens.Generate(u.Email, u.Grants())
	if err != nil {
		return result.Result[model.AuthenticationResponse]{}, err
	}
	return result.Success(model.AuthenticationResponse{Token: token, Expiration: expiration}), nil
}
