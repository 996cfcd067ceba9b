package migration

import (
	"github.com/warden-inc/warden/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.AccountModel{},
		&models.SessionModel{},
	}
}
