package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

// AdminClaimType marks an account as administrator when its value is "true".
const AdminClaimType = "is_admin"

// User is a registered account. Claims carry authorization grants such
// as the admin flag.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	BirthDate    time.Time `json:"birthDate" db:"birth_date"`
	Claims       []Claim   `json:"-"`
}

// Claim is a stored authorization grant.
type Claim struct {
	Type  string `json:"type" db:"claim_type"`
	Value string `json:"value" db:"claim_value"`
}

// Grants flattens claims into the map embedded in tokens.
func (u User) Grants() map[string]string {
	grants := make(map[string]string, len(u.Claims))
	for _, c := range u.Claims {
		grants[c.Type] = c.Value
	}
	return grants
}

// IsAdmin reports whether the admin claim is present and true.
func (u User) IsAdmin() bool {
	return u.Grants()[AdminClaimType] == "true"
}
