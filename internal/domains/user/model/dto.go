package model

import (
	"strings"
	"time"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CredentialsRequest serves both registration and login.
type CredentialsRequest struct {
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	BirthDate time.Time `json:"birthDate"`
}

func (r CredentialsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
			validation.Length(3, 255),
		),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

// ValidatePassword checks the password policy and returns the joined
// failure messages, or empty when the password passes.
func ValidatePassword(password string) string {
	var msgs []string
	if len(password) < 6 {
		msgs = append(msgs, "Passwords must be at least 6 characters.")
	}
	var hasDigit, hasUpper, hasLower, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		default:
			hasSymbol = true
		}
	}
	if !hasSymbol {
		msgs = append(msgs, "Passwords must have at least one non alphanumeric character.")
	}
	if !hasDigit {
		msgs = append(msgs, "Passwords must have at least one digit ('0'-'9').")
	}
	if !hasLower {
		msgs = append(msgs, "Passwords must have at least one lowercase ('a'-'z').")
	}
	if !hasUpper {
		msgs = append(msgs, "Passwords must have at least one uppercase ('A'-'Z').")
	}
	return strings.Join(msgs, "\n")
}

// EditClaimRequest names the account receiving a grant.
type EditClaimRequest struct {
	Email string `json:"email"`
}

func (r EditClaimRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required.Error("email is required"), is.Email),
	)
}

// AuthenticationResponse carries the issued token and its expiry.
type AuthenticationResponse struct {
	Token      string    `json:"token"`
	Expiration time.Time `json:"expiration"`
}

// UserResponse is the public account shape.
type UserResponse struct {
	Email     string    `json:"email"`
	BirthDate time.Time `json:"birthDate"`
}

func ToUserResponse(u User) UserResponse {
	return UserResponse{Email: u.Email, BirthDate: u.BirthDate}
}
