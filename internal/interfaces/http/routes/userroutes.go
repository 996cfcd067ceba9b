package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/warden-inc/warden/internal/application/auth"
	"github.com/warden-inc/warden/internal/interfaces/http/handlers"
	"github.com/warden-inc/warden/internal/interfaces/http/middleware"
	"github.com/warden-inc/warden/internal/shared/authorization"
)

// UserRouteConfig holds dependencies for account and session routes.
type UserRouteConfig struct {
	AuthHandler *handlers.AuthHandler
	UserHandler *handlers.UserHandler
	Guard       *middleware.AuthGuard
}

// SetupUserRoutes configures account routes. Every route declares its policy here.
func SetupUserRoutes(engine *gin.Engine, cfg *UserRouteConfig) {
	public := auth.PublicRoute()
	authenticated := auth.AuthenticatedRoute()
	adminOnly := auth.RolesRoute(authorization.RoleAdmin)

	users := engine.Group("/users")
	{
		users.POST("/create", cfg.Guard.Handle(public, cfg.AuthHandler.Register))
		users.POST("/login", cfg.Guard.Handle(public, cfg.AuthHandler.Login))
		users.GET("/refresh/token", cfg.Guard.Handle(public, cfg.AuthHandler.RefreshToken))

		users.GET("/me", cfg.Guard.Handle(authenticated, cfg.AuthHandler.Me))
		users.POST("/logout", cfg.Guard.Handle(authenticated, cfg.AuthHandler.Logout))

		users.GET("", cfg.Guard.Handle(adminOnly, cfg.UserHandler.ListUsers))
		users.GET("/email/:email", cfg.Guard.Handle(adminOnly, cfg.UserHandler.GetUserByEmail))

		// must come after the named routes
		users.GET("/:id", cfg.Guard.Handle(adminOnly, cfg.UserHandler.GetUser))
		users.PATCH("/:id", cfg.Guard.Handle(adminOnly, cfg.UserHandler.UpdateUser))
		users.DELETE("/:id", cfg.Guard.Handle(adminOnly, cfg.UserHandler.DeleteUser))
	}
}

func SetupHealthRoutes(engine *gin.Engine, guard *middleware.AuthGuard, health middleware.IdentityHandler) {
	engine.GET("/health", guard.Handle(auth.PublicRoute(), health))
}
