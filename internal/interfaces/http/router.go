package http

import (
	"github.com/warden-inc/warden/internal/interfaces/http/handlers"
	"github.com/warden-inc/warden/internal/interfaces/http/middleware"
	"github.com/warden-inc/warden/internal/interfaces/http/routes"
)

// SetupRoutes installs global middleware and every route with its access policy.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.Recovery(c.log.Named("recovery")))
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.CustomLogger(c.log.Named("http")))
	c.engine.Use(middleware.SecurityHeaders())
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	routes.SetupDocsRoutes(c.engine)
	routes.SetupHealthRoutes(c.engine, c.authGuard, handlers.Health)
	routes.SetupUserRoutes(c.engine, &routes.UserRouteConfig{
		AuthHandler: c.authHandler,
		UserHandler: c.userHandler,
		Guard:       c.authGuard,
	})
}
