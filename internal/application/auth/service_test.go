package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/warden-inc/warden/internal/domain/account"
	"github.com/warden-inc/warden/internal/domain/session"
	infraauth "github.com/warden-inc/warden/internal/infrastructure/auth"
	"github.com/warden-inc/warden/internal/infrastructure/auth/authtest"
	"github.com/warden-inc/warden/internal/infrastructure/migration"
	"github.com/warden-inc/warden/internal/infrastructure/repository"
	"github.com/warden-inc/warden/internal/shared/authorization"
	"github.com/warden-inc/warden/internal/shared/biztime"
	"github.com/warden-inc/warden/internal/shared/config"
	"github.com/warden-inc/warden/internal/shared/errors"
	"github.com/warden-inc/warden/internal/shared/logger"
)

type testEnv struct {
	clock    *biztime.FixedClock
	accounts account.Repository
	sessions session.Repository
	service  *Service
	guard    *Guard
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, migration.NewManager().Migrate(db))

	clock := biztime.NewFixedClock(time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC))
	codec := authtest.NewTokenCodec(clock)
	accounts := repository.NewAccountRepository(db, logger.NewNop())
	sessions := repository.NewSessionRepository(db)
	jwtConfig := config.JWTConfig{AccessTTL: 15 * time.Minute, RefreshTTL: 720 * time.Hour}

	return &testEnv{
		clock:    clock,
		accounts: accounts,
		sessions: sessions,
		service:  NewService(accounts, sessions, infraauth.NewBcryptPasswordHasher(bcrypt.MinCost), codec, clock, jwtConfig, logger.NewNop()),
		guard:    NewGuard(codec, sessions, logger.NewNop()),
	}
}

func TestService_AliceScenario(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	alice, err := env.service.Register(ctx, "alice@example.com", "Alice", "correct-password")
	require.NoError(t, err)

	login, err := env.service.Login(ctx, "alice@example.com", "correct-password")
	require.NoError(t, err)
	assert.Equal(t, *alice, login.Identity)

	identity, err := env.guard.Check(ctx, AuthenticatedRoute(), "Bearer "+login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, identity.ID)
	assert.Equal(t, authorization.RoleUser, identity.Role)

	require.NoError(t, env.service.Logout(ctx, alice.ID))

	_, err = env.guard.Check(ctx, AuthenticatedRoute(), "Bearer "+login.AccessToken)
	assert.ErrorIs(t, err, errors.ErrUnauthorized, "token must be revoked before its expiry")

	// Refresh does not consult the session record, so a logged-out account can still mint
	// an access token while its refresh token is unexpired. The minted token is itself
	// rejected by the guard until the next login.
	refreshed, err := env.service.RefreshAccessToken(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = env.guard.Check(ctx, AuthenticatedRoute(), "Bearer "+refreshed.AccessToken)
	assert.ErrorIs(t, err, errors.ErrUnauthorized)
}

func TestService_SecondLoginReplacesSessionToken(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	_, err := env.service.Register(ctx, "bob@example.com", "Bob", "correct-password")
	require.NoError(t, err)

	first, err := env.service.Login(ctx, "bob@example.com", "correct-password")
	require.NoError(t, err)
	env.clock.Advance(time.Second)
	second, err := env.service.Login(ctx, "bob@example.com", "correct-password")
	require.NoError(t, err)
	require.NotEqual(t, first.AccessToken, second.AccessToken)

	sess, err := env.sessions.Get(ctx, second.Identity.ID)
	require.NoError(t, err)
	require.NotNil(t, sess.SessionToken)
	assert.Equal(t, second.AccessToken, *sess.SessionToken)
	assert.True(t, sess.LastLogin.Equal(env.clock.Now()))
}

func TestService_LoginFailures(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	_, err := env.service.Register(ctx, "carol@example.com", "Carol", "correct-password")
	require.NoError(t, err)

	_, errWrong := env.service.Login(ctx, "carol@example.com", "wrong-password")
	_, errUnknown := env.service.Login(ctx, "nobody@example.com", "correct-password")

	assert.True(t, errors.IsType(errWrong, errors.ErrorTypeInvalidCredentials))
	assert.Equal(t, errWrong.Error(), errUnknown.Error())
}

func TestService_LogoutWithoutLogin(t *testing.T) {
	env := setupTestEnv(t)
	assert.NoError(t, env.service.Logout(context.Background(), 404))
	assert.NoError(t, env.service.Logout(context.Background(), 404))
}

func TestService_AdminRoute(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	admin, err := account.NewAccount("root@example.com", "Root", mustHash(t, "admin-password"))
	require.NoError(t, err)
	admin.Role = authorization.RoleAdmin
	require.NoError(t, env.accounts.Create(ctx, admin))

	_, err = env.service.Register(ctx, "dave@example.com", "Dave", "user-password")
	require.NoError(t, err)

	adminLogin, err := env.service.Login(ctx, "root@example.com", "admin-password")
	require.NoError(t, err)
	userLogin, err := env.service.Login(ctx, "dave@example.com", "user-password")
	require.NoError(t, err)

	policy := RolesRoute(authorization.RoleAdmin)

	identity, err := env.guard.Check(ctx, policy, "Bearer "+adminLogin.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, authorization.RoleAdmin, identity.Role)

	_, err = env.guard.Check(ctx, policy, "Bearer "+userLogin.AccessToken)
	assert.ErrorIs(t, err, errors.ErrForbidden)
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := infraauth.NewBcryptPasswordHasher(bcrypt.MinCost).Hash(password)
	require.NoError(t, err)
	return hash
}
