package identity

import (
	"regexp"
	"strings"

	"github.com/wanderplan/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// User represents a registered account. It is the ownership root for all
// trips, budgets and map locations in the system.
type User struct {
	shared.BaseEntity
	Username     string
	Email        string
	PasswordHash string
}

// NewUser creates a new user with a bcrypt-hashed password
func NewUser(username, email, password string) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" || email == "" || password == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Missing fields")
	}
	if len(username) > 100 {
		return nil, shared.NewDomainError("INVALID_USERNAME", "Username cannot exceed 100 characters")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if len(password) > 128 {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}, nil
}

// VerifyPassword checks a plaintext password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

func validateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
