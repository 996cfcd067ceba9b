// Package account holds the account record consumed by authentication and the identity
// claim embedded in access tokens.
package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/warden-inc/warden/internal/shared/authorization"
	"github.com/warden-inc/warden/internal/shared/errors"
)

// Account is the stored account record. PasswordHash never leaves this type; tokens and
// responses carry an Identity instead.
type Account struct {
	ID           uint
	Email        string
	Name         string
	PasswordHash string
	Role         authorization.UserRole
}

// Identity is the verified claim set carried by an access token. It has no password field.
type Identity struct {
	ID    uint                   `json:"id"`
	Email string                 `json:"email"`
	Name  string                 `json:"name"`
	Role  authorization.UserRole `json:"role"`
}

// NewAccount validates input and builds an account with the default user role.
func NewAccount(email, name, passwordHash string) (*Account, error) {
	email = NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.NewValidationError("invalid email address")
	}
	if strings.TrimSpace(name) == "" {
		return nil, errors.NewValidationError("name is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	return &Account{
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: passwordHash,
		Role:         authorization.RoleUser,
	}, nil
}

// Identity strips the password hash and returns the claim to sign.
func (a *Account) Identity() Identity {
	return Identity{
		ID:    a.ID,
		Email: a.Email,
		Name:  a.Name,
		Role:  a.Role,
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Rename replaces name and email after validating them.
func (a *Account) Rename(email, name string) error {
	email = NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return errors.NewValidationError("invalid email address")
	}
	if strings.TrimSpace(name) == "" {
		return errors.NewValidationError("name is required")
	}
	a.Email = email
	a.Name = strings.TrimSpace(name)
	return nil
}

// Repository stores accounts. Both getters return (nil, nil) when no account matches.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, id uint) (*Account, error)
	List(ctx context.Context) ([]*Account, error)
	Create(ctx context.Context, a *Account) error
	// Update overwrites every stored field of a. An email taken by another account is a
	// conflict. Updating a missing id is not an error.
	Update(ctx context.Context, a *Account) error
	// Delete removes the account. A missing account is a not-found error.
	Delete(ctx context.Context, id uint) error
}
