package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the user's email plus any granted claims (e.g. is_admin).
type Claims struct {
	Email  string            `json:"email"`
	Grants map[string]string `json:"grants,omitempty"`
	jwt.RegisteredClaims
}

// Manager issues and validates HS256 bearer tokens.
type Manager struct {
	secret   string
	issuer   string
	audience string
	expiry   time.Duration
}

func NewManager(secret, issuer, audience string, expiry time.Duration) *Manager {
	return &Manager{
		secret:   secret,
		issuer:   issuer,
		audience: audience,
		expiry:   expiry,
	}
}

// Generate signs a token for the given email carrying the granted claims.
// Returns the token string and its expiration timestamp.
func (m *Manager) Generate(email string, grants map[string]string) (string, time.Time, error) {
	expiration := time.Now().Add(m.expiry)

	claims := Claims{
		Email:  email,
		Grants: grants,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.audience},
			ExpiresAt: jwt.NewNumericDate(expiration),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiration, nil
}

// Validate parses the token, verifying signature, issuer and audience.
func (m *Manager) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	}, jwt.WithIssuer(m.issuer), jwt.WithAudience(m.audience))

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
