package usecases

import (
	"context"
	"fmt"

	"github.com/warden-inc/warden/internal/domain/account"
	"github.com/warden-inc/warden/internal/shared/logger"
)

type ListAccountsUseCase struct {
	accountRepo account.Repository
	logger      logger.Interface
}

func NewListAccountsUseCase(accountRepo account.Repository, logger logger.Interface) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// Execute returns the identity of every account. Password hashes are never included.
func (uc *ListAccountsUseCase) Execute(ctx context.Context) ([]account.Identity, error) {
	accounts, err := uc.accountRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list accounts", "error", err)
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	identities := make([]account.Identity, 0, len(accounts))
	for _, a := range accounts {
		identities = append(identities, a.Identity())
	}
	return identities, nil
}
