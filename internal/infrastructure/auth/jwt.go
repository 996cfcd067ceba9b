package auth

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/warden-inc/warden/internal/domain/account"
	"github.com/warden-inc/warden/internal/shared/biztime"
)

// Payload is the application part of a token. Access tokens carry User; refresh tokens
// carry only UserID.
type Payload struct {
	User   *account.Identity `json:"user,omitempty"`
	UserID uint              `json:"user_id,omitempty"`
}

// AccessPayload builds the payload of an access token.
func AccessPayload(identity account.Identity) Payload {
	return Payload{User: &identity}
}

// RefreshPayload builds the payload of a refresh token.
func RefreshPayload(accountID uint) Payload {
	return Payload{UserID: accountID}
}

type Claims struct {
	Payload
	jwt.RegisteredClaims
}

// VerifyResult is the outcome of Verify. Payload is set only when Valid is true.
type VerifyResult struct {
	Valid   bool
	Expired bool
	Payload *Payload
}

// TokenCodec signs and verifies RS256 tokens with a single private key held for the life
// of the process. It performs no I/O and is safe for concurrent use.
type TokenCodec struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	clock      biztime.Clock
	parser     *jwt.Parser
}

func NewTokenCodec(privateKey *rsa.PrivateKey, clock biztime.Clock) *TokenCodec {
	if clock == nil {
		clock = biztime.SystemClock{}
	}
	return &TokenCodec{
		privateKey: privateKey,
		publicKey:  &privateKey.PublicKey,
		clock:      clock,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithTimeFunc(clock.Now),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
		),
	}
}

// Issue signs payload with an expiry of now+ttl.
func (c *TokenCodec) Issue(payload Payload, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", fmt.Errorf("token ttl must be positive, got %s", ttl)
	}

	now := c.clock.Now()
	claims := &Claims{
		Payload: payload,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(c.privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm and expiry. It never returns an error; malformed
// input yields an invalid, non-expired result.
func (c *TokenCodec) Verify(tokenString string) VerifyResult {
	claims := &Claims{}
	token, err := c.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.publicKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return VerifyResult{Expired: true}
		}
		return VerifyResult{}
	}
	if !token.Valid {
		return VerifyResult{}
	}

	payload := claims.Payload
	return VerifyResult{Valid: true, Payload: &payload}
}
