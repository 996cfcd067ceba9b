package usecases

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/warden-inc/warden/internal/domain/account"
	"github.com/warden-inc/warden/internal/shared/errors"
	"github.com/warden-inc/warden/internal/shared/logger"
)

const (
	minPasswordLength = 8
	// bcrypt rejects input longer than 72 bytes
	maxPasswordBytes = 72
)

type RegisterCommand struct {
	Email    string
	Name     string
	Password string
}

type RegisterUseCase struct {
	accountRepo    account.Repository
	passwordHasher PasswordHasher
	logger         logger.Interface
}

func NewRegisterUseCase(accountRepo account.Repository, hasher PasswordHasher, logger logger.Interface) *RegisterUseCase {
	return &RegisterUseCase{
		accountRepo:    accountRepo,
		passwordHasher: hasher,
		logger:         logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*account.Identity, error) {
	if err := validatePassword(cmd.Password); err != nil {
		return nil, err
	}

	email := account.NormalizeEmail(cmd.Email)
	existing, err := uc.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to check existing account", "error", err)
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("email already registered")
	}

	hash, err := uc.passwordHasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	entity, err := account.NewAccount(email, strings.TrimSpace(cmd.Name), hash)
	if err != nil {
		return nil, err
	}

	// Create maps a lost race on the unique email index to the same conflict.
	if err := uc.accountRepo.Create(ctx, entity); err != nil {
		return nil, err
	}

	identity := entity.Identity()
	uc.logger.Infow("account registered", "account_id", identity.ID)
	return &identity, nil
}

func validatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return errors.NewValidationError(fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}
	if len(password) > maxPasswordBytes {
		return errors.NewValidationError(fmt.Sprintf("password must be at most %d bytes", maxPasswordBytes))
	}
	return nil
}
