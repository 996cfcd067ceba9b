package http

import (
	"crypto/rsa"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/warden-inc/warden/internal/application/auth"
	"github.com/warden-inc/warden/internal/domain/account"
	"github.com/warden-inc/warden/internal/domain/session"
	infraauth "github.com/warden-inc/warden/internal/infrastructure/auth"
	"github.com/warden-inc/warden/internal/infrastructure/cache"
	"github.com/warden-inc/warden/internal/infrastructure/config"
	"github.com/warden-inc/warden/internal/infrastructure/repository"
	"github.com/warden-inc/warden/internal/interfaces/http/handlers"
	"github.com/warden-inc/warden/internal/interfaces/http/middleware"
	"github.com/warden-inc/warden/internal/shared/biztime"
	"github.com/warden-inc/warden/internal/shared/constants"
	"github.com/warden-inc/warden/internal/shared/logger"
)

// Container wires repositories, the auth service and the HTTP handlers together.
type Container struct {
	engine *gin.Engine
	cfg    *config.Config
	log    logger.Interface

	accountRepo account.Repository
	sessionRepo session.Repository

	authService *auth.Service
	authGuard   *middleware.AuthGuard

	authHandler *handlers.AuthHandler
	userHandler *handlers.UserHandler
}

// Deps are the process-level resources the container is built from. Redis may be nil
// unless the redis session store is selected.
type Deps struct {
	DB         *gorm.DB
	Redis      *redis.Client
	PrivateKey *rsa.PrivateKey
	Clock      biztime.Clock
}

func NewContainer(deps Deps, cfg *config.Config, log logger.Interface) (*Container, error) {
	if deps.Clock == nil {
		deps.Clock = biztime.SystemClock{}
	}

	sessionRepo, err := newSessionRepository(deps, cfg)
	if err != nil {
		return nil, err
	}

	c := &Container{
		engine:      gin.New(),
		cfg:         cfg,
		log:         log,
		accountRepo: repository.NewAccountRepository(deps.DB, log.Named("account_repository")),
		sessionRepo: sessionRepo,
	}

	codec := infraauth.NewTokenCodec(deps.PrivateKey, deps.Clock)
	hasher := infraauth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	c.authService = auth.NewService(c.accountRepo, c.sessionRepo, hasher, codec, deps.Clock, cfg.Auth.JWT, log.Named("auth"))
	c.authGuard = middleware.NewAuthGuard(auth.NewGuard(codec, c.sessionRepo, log.Named("guard")))

	c.authHandler = handlers.NewAuthHandler(c.authService, cfg.Auth.Cookie, cfg.Auth.JWT, log.Named("auth_handler"))
	c.userHandler = handlers.NewUserHandler(c.authService, log.Named("user_handler"))

	c.SetupRoutes()
	return c, nil
}

func newSessionRepository(deps Deps, cfg *config.Config) (session.Repository, error) {
	switch cfg.Session.Store {
	case constants.SessionStoreRedis:
		if deps.Redis == nil {
			return nil, fmt.Errorf("session store %q requires a redis client", cfg.Session.Store)
		}
		return cache.NewRedisSessionStore(deps.Redis, cfg.Redis.KeyPrefix), nil
	case constants.SessionStoreDatabase, "":
		return repository.NewSessionRepository(deps.DB), nil
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.Session.Store)
	}
}

// Engine returns the configured gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}
