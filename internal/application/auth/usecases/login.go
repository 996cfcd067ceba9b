package usecases

import (
	"context"
	"fmt"

	"github.com/warden-inc/warden/internal/domain/account"
	"github.com/warden-inc/warden/internal/domain/session"
	infraauth "github.com/warden-inc/warden/internal/infrastructure/auth"
	"github.com/warden-inc/warden/internal/shared/biztime"
	"github.com/warden-inc/warden/internal/shared/config"
	"github.com/warden-inc/warden/internal/shared/errors"
	"github.com/warden-inc/warden/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Identity     account.Identity
	AccessToken  string
	RefreshToken string
}

type LoginUseCase struct {
	accountRepo    account.Repository
	sessionRepo    session.Repository
	passwordHasher PasswordHasher
	tokenCodec     TokenCodec
	clock          biztime.Clock
	jwtConfig      config.JWTConfig
	logger         logger.Interface
}

func NewLoginUseCase(
	accountRepo account.Repository,
	sessionRepo session.Repository,
	hasher PasswordHasher,
	tokenCodec TokenCodec,
	clock biztime.Clock,
	jwtConfig config.JWTConfig,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		accountRepo:    accountRepo,
		sessionRepo:    sessionRepo,
		passwordHasher: hasher,
		tokenCodec:     tokenCodec,
		clock:          clock,
		jwtConfig:      jwtConfig,
		logger:         logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	existing, err := uc.accountRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to get account by email", "error", err)
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	// Unknown email and wrong password must be indistinguishable, in error and in timing.
	if existing == nil {
		uc.passwordHasher.Burn(cmd.Password)
		return nil, errors.NewInvalidCredentialsError()
	}
	if err := uc.passwordHasher.Verify(cmd.Password, existing.PasswordHash); err != nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	identity := existing.Identity()

	accessToken, err := uc.tokenCodec.Issue(infraauth.AccessPayload(identity), uc.jwtConfig.AccessTTL)
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "account_id", identity.ID, "error", err)
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}
	refreshToken, err := uc.tokenCodec.Issue(infraauth.RefreshPayload(identity.ID), uc.jwtConfig.RefreshTTL)
	if err != nil {
		uc.logger.Errorw("failed to issue refresh token", "account_id", identity.ID, "error", err)
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	if err := uc.sessionRepo.Upsert(ctx, identity.ID, accessToken, uc.clock.Now()); err != nil {
		uc.logger.Errorw("failed to record session", "account_id", identity.ID, "error", err)
		return nil, fmt.Errorf("failed to record session: %w", err)
	}

	uc.logger.Infow("account logged in", "account_id", identity.ID)

	return &LoginResult{
		Identity:     identity,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
