package handlers

import (
	"context"

	"github.com/warden-inc/warden/internal/application/auth/usecases"
	"github.com/warden-inc/warden/internal/domain/account"
)

// AuthService is the subset of auth.Service the HTTP handlers call.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*usecases.LoginResult, error)
	Logout(ctx context.Context, accountID uint) error
	RefreshAccessToken(ctx context.Context, refreshToken string) (*usecases.RefreshTokenResult, error)
	Register(ctx context.Context, email, name, password string) (*account.Identity, error)
	GetAccount(ctx context.Context, accountID uint) (*account.Identity, error)
	GetAccountByEmail(ctx context.Context, email string) (*account.Identity, error)
	ListAccounts(ctx context.Context) ([]account.Identity, error)
	UpdateAccount(ctx context.Context, cmd usecases.UpdateAccountCommand) (*account.Identity, error)
	DeleteAccount(ctx context.Context, accountID uint) error
}
