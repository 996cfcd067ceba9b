package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/warden-inc/warden/internal/domain/account"
	"github.com/warden-inc/warden/internal/infrastructure/persistence/mappers"
	"github.com/warden-inc/warden/internal/infrastructure/persistence/models"
	"github.com/warden-inc/warden/internal/shared/db"
	apperrors "github.com/warden-inc/warden/internal/shared/errors"
	"github.com/warden-inc/warden/internal/shared/logger"
)

// AccountRepository implements account.Repository on gorm
type AccountRepository struct {
	db     *gorm.DB
	mapper mappers.AccountMapper
	logger logger.Interface
}

func NewAccountRepository(db *gorm.DB, logger logger.Interface) account.Repository {
	return &AccountRepository{
		db:     db,
		mapper: mappers.NewAccountMapper(),
		logger: logger,
	}
}

func (r *AccountRepository) Create(ctx context.Context, entity *account.Account) error {
	model := r.mapper.ToModel(entity)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if db.IsDuplicateKeyError(err) {
			return apperrors.NewConflictError("email already registered")
		}
		r.logger.Errorw("failed to create account in database", "error", err)
		return fmt.Errorf("failed to create account: %w", err)
	}

	entity.ID = model.ID
	entity.Role = r.mapper.ToEntity(model).Role
	r.logger.Infow("account created", "id", model.ID)
	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id uint) (*account.Account, error) {
	var model models.AccountModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get account by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

// GetByEmail matches on the normalized (trimmed, lower-cased) address.
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	var model models.AccountModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("email = ?", account.NormalizeEmail(email)).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get account by email", "error", err)
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

// List returns every account ordered by id.
func (r *AccountRepository) List(ctx context.Context) ([]*account.Account, error) {
	var rows []models.AccountModel
	if err := db.GetTxFromContext(ctx, r.db).Order("id ASC").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list accounts", "error", err)
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	accounts := make([]*account.Account, 0, len(rows))
	for i := range rows {
		accounts = append(accounts, r.mapper.ToEntity(&rows[i]))
	}
	return accounts, nil
}

func (r *AccountRepository) Update(ctx context.Context, entity *account.Account) error {
	model := r.mapper.ToModel(entity)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.AccountModel{}).
		Where("id = ?", entity.ID).
		Updates(map[string]interface{}{
			"email":         model.Email,
			"name":          model.Name,
			"password_hash": model.PasswordHash,
			"role":          model.Role,
		})
	if result.Error != nil {
		if db.IsDuplicateKeyError(result.Error) {
			return apperrors.NewConflictError("email already registered")
		}
		r.logger.Errorw("failed to update account", "id", entity.ID, "error", result.Error)
		return fmt.Errorf("failed to update account: %w", result.Error)
	}

	r.logger.Infow("account updated", "id", entity.ID)
	return nil
}

func (r *AccountRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.AccountModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete account", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("account not found")
	}

	r.logger.Infow("account deleted", "id", id)
	return nil
}
