package usecases

import (
	"context"
	"fmt"

	"github.com/warden-inc/warden/internal/domain/account"
	"github.com/warden-inc/warden/internal/domain/session"
	"github.com/warden-inc/warden/internal/shared/authorization"
	"github.com/warden-inc/warden/internal/shared/errors"
	"github.com/warden-inc/warden/internal/shared/logger"
)

// UpdateAccountCommand carries the fields to change. Nil fields are left as they are.
type UpdateAccountCommand struct {
	AccountID uint
	Email     *string
	Name      *string
	Password  *string
	Role      *string
}

type UpdateAccountUseCase struct {
	accountRepo    account.Repository
	sessionRepo    session.Repository
	passwordHasher PasswordHasher
	logger         logger.Interface
}

func NewUpdateAccountUseCase(
	accountRepo account.Repository,
	sessionRepo session.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{
		accountRepo:    accountRepo,
		sessionRepo:    sessionRepo,
		passwordHasher: hasher,
		logger:         logger,
	}
}

// Execute applies cmd. A changed password or role invalidates the account's session, since
// issued access tokens still carry the old role.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, cmd UpdateAccountCommand) (*account.Identity, error) {
	existing, err := uc.accountRepo.GetByID(ctx, cmd.AccountID)
	if err != nil {
		uc.logger.Errorw("failed to get account", "error", err, "account_id", cmd.AccountID)
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if existing == nil {
		return nil, errors.NewAccountNotFoundError()
	}

	email, name := existing.Email, existing.Name
	if cmd.Email != nil {
		email = *cmd.Email
	}
	if cmd.Name != nil {
		name = *cmd.Name
	}
	if err := existing.Rename(email, name); err != nil {
		return nil, err
	}

	revoke := false
	if cmd.Role != nil {
		role := authorization.UserRole(*cmd.Role)
		if !role.IsValid() {
			return nil, errors.NewValidationError(fmt.Sprintf("unknown role %q", *cmd.Role))
		}
		revoke = revoke || role != existing.Role
		existing.Role = role
	}
	if cmd.Password != nil {
		if err := validatePassword(*cmd.Password); err != nil {
			return nil, err
		}
		hash, err := uc.passwordHasher.Hash(*cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		existing.PasswordHash = hash
		revoke = true
	}

	if err := uc.accountRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if revoke {
		if err := uc.sessionRepo.Invalidate(ctx, existing.ID); err != nil {
			uc.logger.Errorw("failed to invalidate session after update", "account_id", existing.ID, "error", err)
			return nil, fmt.Errorf("failed to invalidate session: %w", err)
		}
	}

	uc.logger.Infow("account updated", "account_id", existing.ID, "session_revoked", revoke)
	identity := existing.Identity()
	return &identity, nil
}
