package auth

import (
	"crypto/rsa"
	"sync"

	"github.com/warden-inc/warden/internal/shared/biztime"
)

var (
	sharedTestKey     *rsa.PrivateKey
	sharedTestKeyOnce sync.Once
)

func testPrivateKey() *rsa.PrivateKey {
	sharedTestKeyOnce.Do(func() {
		key, err := GenerateRSAKey(minRSAKeyBits)
		if err != nil {
			panic(err)
		}
		sharedTestKey = key
	})
	return sharedTestKey
}

func newTestTokenCodec(clock biztime.Clock) *TokenCodec {
	return NewTokenCodec(testPrivateKey(), clock)
}
