package repository

import (
	"context"

	"github.com/google/uuid"

	"library-api/internal/domains/user/model"
)

// Repository - user and claim persistence
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, u *model.User) error
	AddClaim(ctx context.Context, userID uuid.UUID, claim model.Claim) error
}
