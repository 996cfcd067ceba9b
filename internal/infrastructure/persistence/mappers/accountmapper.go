package mappers

import (
	"github.com/warden-inc/warden/internal/domain/account"
	"github.com/warden-inc/warden/internal/infrastructure/persistence/models"
	"github.com/warden-inc/warden/internal/shared/authorization"
)

// AccountMapper handles the conversion between account entities and persistence models
type AccountMapper interface {
	ToEntity(model *models.AccountModel) *account.Account
	ToModel(entity *account.Account) *models.AccountModel
}

type AccountMapperImpl struct{}

func NewAccountMapper() AccountMapper {
	return &AccountMapperImpl{}
}

func (m *AccountMapperImpl) ToEntity(model *models.AccountModel) *account.Account {
	if model == nil {
		return nil
	}
	return &account.Account{
		ID:           model.ID,
		Email:        model.Email,
		Name:         model.Name,
		PasswordHash: model.PasswordHash,
		Role:         authorization.ParseUserRole(model.Role),
	}
}

func (m *AccountMapperImpl) ToModel(entity *account.Account) *models.AccountModel {
	if entity == nil {
		return nil
	}
	role := entity.Role
	if !role.IsValid() {
		role = authorization.RoleUser
	}
	return &models.AccountModel{
		ID:           entity.ID,
		Email:        entity.Email,
		Name:         entity.Name,
		PasswordHash: entity.PasswordHash,
		Role:         role.String(),
	}
}
