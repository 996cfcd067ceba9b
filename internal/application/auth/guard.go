package auth

import (
	"context"
	"strings"

	"github.com/warden-inc/warden/internal/application/auth/usecases"
	"github.com/warden-inc/warden/internal/domain/account"
	"github.com/warden-inc/warden/internal/domain/session"
	"github.com/warden-inc/warden/internal/shared/authorization"
	"github.com/warden-inc/warden/internal/shared/errors"
	"github.com/warden-inc/warden/internal/shared/logger"
)

const bearerPrefix = "Bearer "

// Guard decides whether a request may reach its handler. Every authentication failure
// collapses to errors.ErrUnauthorized; a role miss is errors.ErrForbidden.
type Guard struct {
	tokenCodec  usecases.TokenCodec
	sessionRepo session.Repository
	logger      logger.Interface
}

func NewGuard(tokenCodec usecases.TokenCodec, sessionRepo session.Repository, logger logger.Interface) *Guard {
	return &Guard{
		tokenCodec:  tokenCodec,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Authenticate returns (nil, nil) for public routes. Otherwise the token signature and
// expiry are checked before the session record is read.
func (g *Guard) Authenticate(ctx context.Context, policy RoutePolicy, authorizationHeader string) (*account.Identity, error) {
	if policy.Public {
		return nil, nil
	}

	token, ok := extractBearer(authorizationHeader)
	if !ok {
		return nil, errors.ErrUnauthorized
	}

	result := g.tokenCodec.Verify(token)
	if !result.Valid || result.Payload == nil || result.Payload.User == nil {
		return nil, errors.ErrUnauthorized
	}
	identity := *result.Payload.User

	sess, err := g.sessionRepo.Get(ctx, identity.ID)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			g.logger.Warnw("session lookup failed", "account_id", identity.ID, "error", err)
		}
		return nil, errors.ErrUnauthorized
	}
	if !sess.IsLive() {
		return nil, errors.ErrUnauthorized
	}

	return &identity, nil
}

// Authorize reports whether identity holds one of the required roles.
func (g *Guard) Authorize(identity *account.Identity, requiredRoles []authorization.UserRole) bool {
	if len(requiredRoles) == 0 {
		return true
	}
	if identity == nil {
		return false
	}
	return authorization.HasAnyRole(identity.Role, requiredRoles)
}

// Check runs Authenticate then Authorize for policy.
func (g *Guard) Check(ctx context.Context, policy RoutePolicy, authorizationHeader string) (*account.Identity, error) {
	identity, err := g.Authenticate(ctx, policy, authorizationHeader)
	if err != nil {
		return nil, err
	}
	if policy.Public {
		return nil, nil
	}
	if !g.Authorize(identity, policy.RequiredRoles) {
		g.logger.Warnw("role check failed", "account_id", identity.ID, "role", identity.Role)
		return nil, errors.ErrForbidden
	}
	return identity, nil
}

func extractBearer(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := header[len(bearerPrefix):]
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}
	return token, true
}
