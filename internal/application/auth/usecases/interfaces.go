package usecases

import (
	"time"

	infraauth "github.com/warden-inc/warden/internal/infrastructure/auth"
)

// TokenCodec issues and verifies signed tokens.
type TokenCodec interface {
	Issue(payload infraauth.Payload, ttl time.Duration) (string, error)
	Verify(token string) infraauth.VerifyResult
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
	// Burn spends the same work as Verify without a stored hash.
	Burn(password string)
}
