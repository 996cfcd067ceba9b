// Package authtest provides a signing key and token codec for tests in other packages.
package authtest

import (
	"crypto/rsa"
	"sync"

	"github.com/warden-inc/warden/internal/infrastructure/auth"
	"github.com/warden-inc/warden/internal/shared/biztime"
)

var (
	key     *rsa.PrivateKey
	keyOnce sync.Once
)

// PrivateKey returns a 2048-bit key generated once per test binary.
func PrivateKey() *rsa.PrivateKey {
	keyOnce.Do(func() {
		k, err := auth.GenerateRSAKey(2048)
		if err != nil {
			panic(err)
		}
		key = k
	})
	return key
}

// NewTokenCodec returns a codec over PrivateKey.
func NewTokenCodec(clock biztime.Clock) *auth.TokenCodec {
	return auth.NewTokenCodec(PrivateKey(), clock)
}
