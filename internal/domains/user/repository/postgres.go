package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-api/internal/domains/user/model"
)

// postgresRepository - Raw SQL with pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return r.get(ctx, "id = $1", id)
}

func (r *postgresRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.get(ctx, "LOWER(email) = LOWER($1)", email)
}

func (r *postgresRepository) get(ctx context.Context, predicate string, arg interface{}) (*model.User, error) {
	var u model.User
	sql := fmt.Sprintf("SELECT id, email, password_hash, birth_date FROM users WHERE %s", predicate)
	err := r.pool.QueryRow(ctx, sql, arg).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.BirthDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	claims, err := r.claims(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	u.Claims = claims
	return &u, nil
}

func (r *postgresRepository) Create(ctx context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, birth_date)
		VALUES ($1, $2, $3, $4)
	`, u.ID, strings.ToLower(u.Email), u.PasswordHash, u.BirthDate)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *postgresRepository) AddClaim(ctx context.Context, userID uuid.UUID, claim model.Claim) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO user_claims (user_id, claim_type, claim_value)
		VALUES ($1, $2, $3)
	`, userID, claim.Type, claim.Value)
	if err != nil {
		return fmt.Errorf("add claim: %w", err)
	}
	return nil
}

func (r *postgresRepository) claims(ctx context.Context, userID uuid.UUID) ([]model.Claim, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT claim_type, claim_value FROM user_claims WHERE user_id = $1", userID)
	if err != nil {
		return nil, fmt.Errorf("load claims: %w", err)
	}
	defer rows.Close()

	var claims []model.Claim
	for rows.Next() {
		var c model.Claim
		if err := rows.Scan(&c.Type, &c.Value); err != nil {
			return nil, err
		}
		claims = append(claims, c)
	}
	return claims, rows.Err()
}
