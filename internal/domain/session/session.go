// Package session models the single liveness record kept per account. A token is only
// honoured while the record for its account is live, which is what makes logout take
// effect before the token expires.
package session

import (
	"context"
	"time"

	"github.com/warden-inc/warden/internal/shared/errors"
)

// ErrSessionNotFound is returned by Repository.Get when the account never logged in.
var ErrSessionNotFound = errors.NewNotFoundError("session not found")

// Session is keyed by AccountID; at most one exists per account. Rows are never deleted.
type Session struct {
	AccountID    uint
	SessionToken *string
	IsActive     bool
	LastLogin    time.Time
}

// IsLive reports whether tokens for this account may still be honoured.
func (s *Session) IsLive() bool {
	return s != nil && s.IsActive && s.SessionToken != nil
}

// Repository persists session records.
type Repository interface {
	// Get returns ErrSessionNotFound when no record exists.
	Get(ctx context.Context, accountID uint) (*Session, error)
	// Upsert creates or overwrites the record and marks it active. Last write wins.
	Upsert(ctx context.Context, accountID uint, sessionToken string, lastLogin time.Time) error
	// Invalidate clears the token and deactivates the record. It succeeds when no record exists.
	Invalidate(ctx context.Context, accountID uint) error
}
