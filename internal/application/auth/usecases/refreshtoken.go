package usecases

import (
	"context"
	"fmt"

	"github.com/warden-inc/warden/internal/domain/account"
	infraauth "github.com/warden-inc/warden/internal/infrastructure/auth"
	"github.com/warden-inc/warden/internal/shared/config"
	"github.com/warden-inc/warden/internal/shared/errors"
	"github.com/warden-inc/warden/internal/shared/logger"
)

const refreshTokenType = "refresh token"

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenResult struct {
	AccessToken string
}

// RefreshTokenUseCase exchanges a refresh token for a new access token. Possession of an
// unexpired refresh token is the whole proof: the session record is not consulted and the
// refresh token is neither rotated nor stored.
type RefreshTokenUseCase struct {
	accountRepo account.Repository
	tokenCodec  TokenCodec
	jwtConfig   config.JWTConfig
	logger      logger.Interface
}

func NewRefreshTokenUseCase(
	accountRepo account.Repository,
	tokenCodec TokenCodec,
	jwtConfig config.JWTConfig,
	logger logger.Interface,
) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		accountRepo: accountRepo,
		tokenCodec:  tokenCodec,
		jwtConfig:   jwtConfig,
		logger:      logger,
	}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error) {
	result := uc.tokenCodec.Verify(cmd.RefreshToken)
	if result.Expired {
		return nil, errors.NewTokenExpiredError(refreshTokenType)
	}
	if !result.Valid || result.Payload == nil || result.Payload.UserID == 0 {
		uc.logger.Warnw("rejected refresh token")
		return nil, errors.NewTokenInvalidError(refreshTokenType)
	}

	accountID := result.Payload.UserID
	existing, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		uc.logger.Errorw("failed to get account", "error", err, "account_id", accountID)
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if existing == nil {
		uc.logger.Warnw("account not found during token refresh", "account_id", accountID)
		return nil, errors.NewAccountNotFoundError()
	}

	accessToken, err := uc.tokenCodec.Issue(infraauth.AccessPayload(existing.Identity()), uc.jwtConfig.AccessTTL)
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "account_id", accountID, "error", err)
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	uc.logger.Infow("access token refreshed", "account_id", accountID)
	return &RefreshTokenResult{AccessToken: accessToken}, nil
}
