// Package auth is the authentication facade and the request guard built on it.
package auth

import (
	"context"

	"github.com/warden-inc/warden/internal/application/auth/usecases"
	"github.com/warden-inc/warden/internal/domain/account"
	"github.com/warden-inc/warden/internal/domain/session"
	"github.com/warden-inc/warden/internal/shared/biztime"
	"github.com/warden-inc/warden/internal/shared/config"
	"github.com/warden-inc/warden/internal/shared/logger"
)

// Service orchestrates the login, logout, refresh, registration and account administration
// use cases.
type Service struct {
	loginUC      *usecases.LoginUseCase
	logoutUC     *usecases.LogoutUseCase
	refreshUC    *usecases.RefreshTokenUseCase
	registerUC   *usecases.RegisterUseCase
	getAccountUC *usecases.GetAccountUseCase
	getByEmailUC *usecases.GetAccountByEmailUseCase
	listUC       *usecases.ListAccountsUseCase
	updateUC     *usecases.UpdateAccountUseCase
	deleteUC     *usecases.DeleteAccountUseCase
	logger       logger.Interface
}

func NewService(
	accountRepo account.Repository,
	sessionRepo session.Repository,
	hasher usecases.PasswordHasher,
	tokenCodec usecases.TokenCodec,
	clock biztime.Clock,
	jwtConfig config.JWTConfig,
	logger logger.Interface,
) *Service {
	return &Service{
		loginUC:      usecases.NewLoginUseCase(accountRepo, sessionRepo, hasher, tokenCodec, clock, jwtConfig, logger),
		logoutUC:     usecases.NewLogoutUseCase(sessionRepo, logger),
		refreshUC:    usecases.NewRefreshTokenUseCase(accountRepo, tokenCodec, jwtConfig, logger),
		registerUC:   usecases.NewRegisterUseCase(accountRepo, hasher, logger),
		getAccountUC: usecases.NewGetAccountUseCase(accountRepo, logger),
		getByEmailUC: usecases.NewGetAccountByEmailUseCase(accountRepo, logger),
		listUC:       usecases.NewListAccountsUseCase(accountRepo, logger),
		updateUC:     usecases.NewUpdateAccountUseCase(accountRepo, sessionRepo, hasher, logger),
		deleteUC:     usecases.NewDeleteAccountUseCase(accountRepo, sessionRepo, logger),
		logger:       logger,
	}
}

func (s *Service) Login(ctx context.Context, email, password string) (*usecases.LoginResult, error) {
	return s.loginUC.Execute(ctx, usecases.LoginCommand{Email: email, Password: password})
}

// Logout is idempotent.
func (s *Service) Logout(ctx context.Context, accountID uint) error {
	return s.logoutUC.Execute(ctx, usecases.LogoutCommand{AccountID: accountID})
}

func (s *Service) RefreshAccessToken(ctx context.Context, refreshToken string) (*usecases.RefreshTokenResult, error) {
	return s.refreshUC.Execute(ctx, usecases.RefreshTokenCommand{RefreshToken: refreshToken})
}

func (s *Service) Register(ctx context.Context, email, name, password string) (*account.Identity, error) {
	return s.registerUC.Execute(ctx, usecases.RegisterCommand{Email: email, Name: name, Password: password})
}

func (s *Service) GetAccount(ctx context.Context, accountID uint) (*account.Identity, error) {
	return s.getAccountUC.Execute(ctx, accountID)
}

func (s *Service) GetAccountByEmail(ctx context.Context, email string) (*account.Identity, error) {
	return s.getByEmailUC.Execute(ctx, email)
}

func (s *Service) ListAccounts(ctx context.Context) ([]account.Identity, error) {
	return s.listUC.Execute(ctx)
}

func (s *Service) UpdateAccount(ctx context.Context, cmd usecases.UpdateAccountCommand) (*account.Identity, error) {
	return s.updateUC.Execute(ctx, cmd)
}

func (s *Service) DeleteAccount(ctx context.Context, accountID uint) error {
	return s.deleteUC.Execute(ctx, accountID)
}
