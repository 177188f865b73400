package service

import (
	"context"

	"github.com/google/uuid"

	"library-api/internal/domains/user/model"
	"library-api/internal/shared/result"
)

// Service - account and token operations
type Service interface {
	GetValidatedUser(ctx context.Context, email string) (result.Result[model.User], error)
	GetValidatedUserByID(ctx context.Context, id uuid.UUID) (result.Result[model.User], error)
	Register(ctx context.Context, req model.CredentialsRequest) (result.Result[model.AuthenticationResponse], error)
	Login(ctx context.Context, req model.CredentialsRequest) (result.Result[model.AuthenticationResponse], error)
	RefreshToken(ctx context.Context, email string) (result.Result[model.AuthenticationResponse], error)
	MakeAdmin(ctx context.Context, req model.EditClaimRequest) (result.Result[result.Unit], error)
}
