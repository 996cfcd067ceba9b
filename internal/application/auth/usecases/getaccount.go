package usecases

import (
	"context"
	"fmt"

	"github.com/warden-inc/warden/internal/domain/account"
	"github.com/warden-inc/warden/internal/shared/errors"
	"github.com/warden-inc/warden/internal/shared/logger"
)

type GetAccountUseCase struct {
	accountRepo account.Repository
	logger      logger.Interface
}

func NewGetAccountUseCase(accountRepo account.Repository, logger logger.Interface) *GetAccountUseCase {
	return &GetAccountUseCase{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (uc *GetAccountUseCase) Execute(ctx context.Context, accountID uint) (*account.Identity, error) {
	existing, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		uc.logger.Errorw("failed to get account", "error", err, "account_id", accountID)
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if existing == nil {
		return nil, errors.NewAccountNotFoundError()
	}
	identity := existing.Identity()
	return &identity, nil
}

type GetAccountByEmailUseCase struct {
	accountRepo account.Repository
	logger      logger.Interface
}

func NewGetAccountByEmailUseCase(accountRepo account.Repository, logger logger.Interface) *GetAccountByEmailUseCase {
	return &GetAccountByEmailUseCase{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (uc *GetAccountByEmailUseCase) Execute(ctx context.Context, email string) (*account.Identity, error) {
	existing, err := uc.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to get account by email", "error", err)
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if existing == nil {
		return nil, errors.NewAccountNotFoundError()
	}
	identity := existing.Identity()
	return &identity, nil
}
