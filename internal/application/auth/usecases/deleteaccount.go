package usecases

import (
	"context"
	"fmt"

	"github.com/warden-inc/warden/internal/domain/account"
	"github.com/warden-inc/warden/internal/domain/session"
	"github.com/warden-inc/warden/internal/shared/errors"
	"github.com/warden-inc/warden/internal/shared/logger"
)

type DeleteAccountUseCase struct {
	accountRepo account.Repository
	sessionRepo session.Repository
	logger      logger.Interface
}

func NewDeleteAccountUseCase(accountRepo account.Repository, sessionRepo session.Repository, logger logger.Interface) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		accountRepo: accountRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Execute removes the account and invalidates its session. Outstanding refresh tokens fail
// with AccountNotFound from then on.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, accountID uint) error {
	if err := uc.accountRepo.Delete(ctx, accountID); err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewAccountNotFoundError()
		}
		return err
	}

	if err := uc.sessionRepo.Invalidate(ctx, accountID); err != nil {
		uc.logger.Errorw("failed to invalidate session of deleted account", "account_id", accountID, "error", err)
		return fmt.Errorf("failed to invalidate session: %w", err)
	}

	uc.logger.Infow("account deleted", "account_id", accountID)
	return nil
}
