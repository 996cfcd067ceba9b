package usecases

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/warden-inc/warden/internal/domain/account"
	infraauth "github.com/warden-inc/warden/internal/infrastructure/auth"
	"github.com/warden-inc/warden/internal/infrastructure/auth/authtest"
	"github.com/warden-inc/warden/internal/shared/authorization"
	"github.com/warden-inc/warden/internal/shared/biztime"
	"github.com/warden-inc/warden/internal/shared/config"
	"github.com/warden-inc/warden/internal/shared/errors"
	"github.com/warden-inc/warden/internal/shared/logger"
)

var (
	testNow       = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	testJWTConfig = config.JWTConfig{AccessTTL: 15 * time.Minute, RefreshTTL: 720 * time.Hour}
)

func testAccount() *account.Account {
	return &account.Account{
		ID:           11,
		Email:        "alice@example.com",
		Name:         "Alice",
		PasswordHash: "stored-hash",
		Role:         authorization.RoleUser,
	}
}

func TestLoginUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("success issues both tokens and upserts the session", func(t *testing.T) {
		clock := biztime.NewFixedClock(testNow)
		codec := authtest.NewTokenCodec(clock)
		accounts := new(MockAccountRepository)
		sessions := new(MockSessionRepository)
		hasher := new(MockPasswordHasher)

		accounts.On("GetByEmail", ctx, "alice@example.com").Return(testAccount(), nil)
		hasher.On("Verify", "s3cret-pass", "stored-hash").Return(nil)
		sessions.On("Upsert", ctx, uint(11), mock.AnythingOfType("string"), testNow).Return(nil)

		uc := NewLoginUseCase(accounts, sessions, hasher, codec, clock, testJWTConfig, logger.NewNop())
		result, err := uc.Execute(ctx, LoginCommand{Email: "alice@example.com", Password: "s3cret-pass"})
		require.NoError(t, err)

		assert.Equal(t, testAccount().Identity(), result.Identity)

		access := codec.Verify(result.AccessToken)
		require.True(t, access.Valid)
		assert.Equal(t, result.Identity, *access.Payload.User)

		refresh := codec.Verify(result.RefreshToken)
		require.True(t, refresh.Valid)
		assert.Equal(t, uint(11), refresh.Payload.UserID)
		assert.Nil(t, refresh.Payload.User)

		sessions.AssertCalled(t, "Upsert", ctx, uint(11), result.AccessToken, testNow)
		hasher.AssertNotCalled(t, "Burn", mock.Anything)
	})

	t.Run("unknown email and wrong password fail identically", func(t *testing.T) {
		clock := biztime.NewFixedClock(testNow)
		accounts := new(MockAccountRepository)
		sessions := new(MockSessionRepository)
		hasher := new(MockPasswordHasher)

		accounts.On("GetByEmail", ctx, "ghost@example.com").Return(nil, nil)
		accounts.On("GetByEmail", ctx, "alice@example.com").Return(testAccount(), nil)
		hasher.On("Burn", "whatever").Return()
		hasher.On("Verify", "whatever", "stored-hash").Return(stderrors.New("mismatch"))

		uc := NewLoginUseCase(accounts, sessions, hasher, authtest.NewTokenCodec(clock), clock, testJWTConfig, logger.NewNop())

		_, errUnknown := uc.Execute(ctx, LoginCommand{Email: "ghost@example.com", Password: "whatever"})
		_, errWrong := uc.Execute(ctx, LoginCommand{Email: "alice@example.com", Password: "whatever"})

		require.Error(t, errUnknown)
		require.Error(t, errWrong)
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
		assert.True(t, errors.IsType(errUnknown, errors.ErrorTypeInvalidCredentials))
		assert.True(t, errors.IsType(errWrong, errors.ErrorTypeInvalidCredentials))

		hasher.AssertCalled(t, "Burn", "whatever")
		sessions.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("store failure is not a credential error", func(t *testing.T) {
		clock := biztime.NewFixedClock(testNow)
		accounts := new(MockAccountRepository)
		accounts.On("GetByEmail", ctx, "alice@example.com").Return(nil, stderrors.New("db down"))

		uc := NewLoginUseCase(accounts, new(MockSessionRepository), new(MockPasswordHasher), authtest.NewTokenCodec(clock), clock, testJWTConfig, logger.NewNop())
		_, err := uc.Execute(ctx, LoginCommand{Email: "alice@example.com", Password: "x"})

		require.Error(t, err)
		assert.Nil(t, errors.GetAppError(err))
	})

	t.Run("session upsert failure fails the login", func(t *testing.T) {
		clock := biztime.NewFixedClock(testNow)
		accounts := new(MockAccountRepository)
		sessions := new(MockSessionRepository)
		hasher := new(MockPasswordHasher)

		accounts.On("GetByEmail", ctx, "alice@example.com").Return(testAccount(), nil)
		hasher.On("Verify", "pw", "stored-hash").Return(nil)
		sessions.On("Upsert", ctx, uint(11), mock.Anything, testNow).Return(stderrors.New("write failed"))

		uc := NewLoginUseCase(accounts, sessions, hasher, authtest.NewTokenCodec(clock), clock, testJWTConfig, logger.NewNop())
		result, err := uc.Execute(ctx, LoginCommand{Email: "alice@example.com", Password: "pw"})

		assert.Nil(t, result)
		assert.ErrorContains(t, err, "failed to record session")
	})
}

func TestLogoutUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	sessions := new(MockSessionRepository)
	sessions.On("Invalidate", ctx, uint(11)).Return(nil).Twice()

	uc := NewLogoutUseCase(sessions, logger.NewNop())
	assert.NoError(t, uc.Execute(ctx, LogoutCommand{AccountID: 11}))
	assert.NoError(t, uc.Execute(ctx, LogoutCommand{AccountID: 11}))
	sessions.AssertExpectations(t)

	failing := new(MockSessionRepository)
	failing.On("Invalidate", ctx, uint(12)).Return(stderrors.New("boom"))
	assert.Error(t, NewLogoutUseCase(failing, logger.NewNop()).Execute(ctx, LogoutCommand{AccountID: 12}))
}

func TestRefreshTokenUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("valid refresh token mints an access token", func(t *testing.T) {
		clock := biztime.NewFixedClock(testNow)
		codec := authtest.NewTokenCodec(clock)
		accounts := new(MockAccountRepository)
		accounts.On("GetByID", ctx, uint(11)).Return(testAccount(), nil)

		refresh, err := codec.Issue(infraauth.RefreshPayload(11), testJWTConfig.RefreshTTL)
		require.NoError(t, err)

		clock.Advance(time.Hour)
		uc := NewRefreshTokenUseCase(accounts, codec, testJWTConfig, logger.NewNop())
		result, err := uc.Execute(ctx, RefreshTokenCommand{RefreshToken: refresh})
		require.NoError(t, err)

		verified := codec.Verify(result.AccessToken)
		require.True(t, verified.Valid)
		assert.Equal(t, testAccount().Identity(), *verified.Payload.User)
	})

	t.Run("expired refresh token", func(t *testing.T) {
		clock := biztime.NewFixedClock(testNow)
		codec := authtest.NewTokenCodec(clock)
		refresh, err := codec.Issue(infraauth.RefreshPayload(11), time.Minute)
		require.NoError(t, err)
		clock.Advance(time.Minute)

		_, err = NewRefreshTokenUseCase(new(MockAccountRepository), codec, testJWTConfig, logger.NewNop()).
			Execute(ctx, RefreshTokenCommand{RefreshToken: refresh})
		assert.True(t, errors.IsType(err, errors.ErrorTypeTokenExpired))
		assert.True(t, errors.IsInvalidToken(err))
	})

	t.Run("garbage and access tokens are invalid", func(t *testing.T) {
		clock := biztime.NewFixedClock(testNow)
		codec := authtest.NewTokenCodec(clock)
		access, err := codec.Issue(infraauth.AccessPayload(testAccount().Identity()), time.Minute)
		require.NoError(t, err)

		uc := NewRefreshTokenUseCase(new(MockAccountRepository), codec, testJWTConfig, logger.NewNop())
		for _, token := range []string{"", "garbage", access} {
			_, err := uc.Execute(ctx, RefreshTokenCommand{RefreshToken: token})
			assert.True(t, errors.IsType(err, errors.ErrorTypeTokenInvalid), "token %q", token)
		}
	})

	t.Run("account deleted after issue", func(t *testing.T) {
		clock := biztime.NewFixedClock(testNow)
		codec := authtest.NewTokenCodec(clock)
		accounts := new(MockAccountRepository)
		accounts.On("GetByID", ctx, uint(99)).Return(nil, nil)

		refresh, err := codec.Issue(infraauth.RefreshPayload(99), time.Hour)
		require.NoError(t, err)

		_, err = NewRefreshTokenUseCase(accounts, codec, testJWTConfig, logger.NewNop()).
			Execute(ctx, RefreshTokenCommand{RefreshToken: refresh})
		assert.True(t, errors.IsType(err, errors.ErrorTypeAccountNotFound))
	})
}

func TestRegisterUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("creates account with hashed password and user role", func(t *testing.T) {
		accounts := new(MockAccountRepository)
		hasher := new(MockPasswordHasher)
		accounts.On("GetByEmail", ctx, "bob@example.com").Return(nil, nil)
		hasher.On("Hash", "long-enough").Return("hashed", nil)
		accounts.On("Create", ctx, mock.MatchedBy(func(a *account.Account) bool {
			return a.Email == "bob@example.com" && a.PasswordHash == "hashed" && a.Role == authorization.RoleUser
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*account.Account).ID = 5
		}).Return(nil)

		identity, err := NewRegisterUseCase(accounts, hasher, logger.NewNop()).
			Execute(ctx, RegisterCommand{Email: " Bob@Example.com ", Name: "Bob", Password: "long-enough"})
		require.NoError(t, err)
		assert.Equal(t, uint(5), identity.ID)
		assert.Equal(t, authorization.RoleUser, identity.Role)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		accounts := new(MockAccountRepository)
		accounts.On("GetByEmail", ctx, "alice@example.com").Return(testAccount(), nil)

		_, err := NewRegisterUseCase(accounts, new(MockPasswordHasher), logger.NewNop()).
			Execute(ctx, RegisterCommand{Email: "alice@example.com", Name: "A", Password: "long-enough"})
		assert.True(t, errors.IsConflictError(err))
		accounts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("short password", func(t *testing.T) {
		_, err := NewRegisterUseCase(new(MockAccountRepository), new(MockPasswordHasher), logger.NewNop()).
			Execute(ctx, RegisterCommand{Email: "c@example.com", Name: "C", Password: "short"})
		assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
	})

	t.Run("password over 72 bytes is rejected before hashing", func(t *testing.T) {
		accounts := new(MockAccountRepository)
		hasher := new(MockPasswordHasher)

		// 30 characters, 90 bytes
		_, err := NewRegisterUseCase(accounts, hasher, logger.NewNop()).
			Execute(ctx, RegisterCommand{Email: "d@example.com", Name: "D", Password: strings.Repeat("€", 30)})
		assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
		hasher.AssertNotCalled(t, "Hash", mock.Anything)
		accounts.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})

	t.Run("72-byte password is accepted", func(t *testing.T) {
		accounts := new(MockAccountRepository)
		hasher := new(MockPasswordHasher)
		password := strings.Repeat("€", 24)
		accounts.On("GetByEmail", ctx, "e@example.com").Return(nil, nil)
		hasher.On("Hash", password).Return("hashed", nil)
		accounts.On("Create", ctx, mock.Anything).Return(nil)

		_, err := NewRegisterUseCase(accounts, hasher, logger.NewNop()).
			Execute(ctx, RegisterCommand{Email: "e@example.com", Name: "E", Password: password})
		assert.NoError(t, err)
	})
}

func TestGetAccountUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	accounts := new(MockAccountRepository)
	accounts.On("GetByID", ctx, uint(11)).Return(testAccount(), nil)
	accounts.On("GetByID", ctx, uint(12)).Return(nil, nil)

	uc := NewGetAccountUseCase(accounts, logger.NewNop())

	identity, err := uc.Execute(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", identity.Email)

	_, err = uc.Execute(ctx, 12)
	assert.True(t, errors.IsType(err, errors.ErrorTypeAccountNotFound))
}
