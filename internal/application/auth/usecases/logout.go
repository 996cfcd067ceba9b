package usecases

import (
	"context"
	"fmt"

	"github.com/warden-inc/warden/internal/domain/session"
	"github.com/warden-inc/warden/internal/shared/logger"
)

type LogoutCommand struct {
	AccountID uint
}

type LogoutUseCase struct {
	sessionRepo session.Repository
	logger      logger.Interface
}

func NewLogoutUseCase(sessionRepo session.Repository, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Execute revokes every outstanding access token of the account. It succeeds without a prior login.
func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if err := uc.sessionRepo.Invalidate(ctx, cmd.AccountID); err != nil {
		uc.logger.Errorw("failed to invalidate session", "error", err, "account_id", cmd.AccountID)
		return fmt.Errorf("failed to logout: %w", err)
	}

	uc.logger.Infow("account logged out", "account_id", cmd.AccountID)
	return nil
}
