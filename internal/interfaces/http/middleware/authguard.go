package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/warden-inc/warden/internal/application/auth"
	"github.com/warden-inc/warden/internal/domain/account"
	"github.com/warden-inc/warden/internal/shared/constants"
	"github.com/warden-inc/warden/internal/shared/utils"
)

// IdentityHandler receives the identity the guard resolved. It is nil on public routes.
type IdentityHandler func(c *gin.Context, identity *account.Identity)

// AuthGuard adapts auth.Guard to gin routes.
type AuthGuard struct {
	guard *auth.Guard
}

func NewAuthGuard(guard *auth.Guard) *AuthGuard {
	return &AuthGuard{guard: guard}
}

// Handle evaluates policy before calling next. Rejections are rendered with the standard
// envelope and next is not called.
func (m *AuthGuard) Handle(policy auth.RoutePolicy, next IdentityHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := m.guard.Check(c.Request.Context(), policy, c.GetHeader(constants.HeaderAuthorization))
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}
		if identity != nil {
			// for request logging only; handlers get the identity as an argument
			c.Set(constants.ContextKeyUserID, identity.ID)
		}
		next(c, identity)
	}
}
