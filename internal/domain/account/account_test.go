package account

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warden-inc/warden/internal/shared/authorization"
	"github.com/warden-inc/warden/internal/shared/errors"
)

func TestNewAccount(t *testing.T) {
	a, err := NewAccount("  Alice@Example.COM ", " Alice ", "$2a$hash")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", a.Email)
	assert.Equal(t, "Alice", a.Name)
	assert.Equal(t, authorization.RoleUser, a.Role)

	_, err = NewAccount("not-an-email", "Alice", "$2a$hash")
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))

	_, err = NewAccount("alice@example.com", " ", "$2a$hash")
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))

	_, err = NewAccount("alice@example.com", "Alice", "")
	assert.Error(t, err)
}

func TestIdentity_OmitsPassword(t *testing.T) {
	a := &Account{ID: 9, Email: "bob@example.com", Name: "Bob", PasswordHash: "secret-hash", Role: authorization.RoleAdmin}

	id := a.Identity()
	assert.Equal(t, Identity{ID: 9, Email: "bob@example.com", Name: "Bob", Role: authorization.RoleAdmin}, id)

	raw, err := json.Marshal(id)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret-hash")
	assert.NotContains(t, string(raw), "password")
}

func TestAccount_Rename(t *testing.T) {
	a, err := NewAccount("alice@example.com", "Alice", "hash")
	require.NoError(t, err)

	require.NoError(t, a.Rename(" Alice@Corp.Example ", " Alice L "))
	assert.Equal(t, "alice@corp.example", a.Email)
	assert.Equal(t, "Alice L", a.Name)

	assert.Error(t, a.Rename("no-at-sign", "Alice"))
	assert.Error(t, a.Rename("alice@example.com", " "))
	assert.Equal(t, "alice@corp.example", a.Email, "failed rename leaves the account unchanged")
}
