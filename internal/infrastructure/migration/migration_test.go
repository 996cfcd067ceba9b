package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/warden-inc/warden/internal/infrastructure/persistence/models"
)

func TestManager_MigrateCreatesWardenTables(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	m := NewManager()
	require.NoError(t, m.Migrate(db))
	require.NoError(t, m.Migrate(db), "migration must be re-runnable")

	assert.True(t, db.Migrator().HasTable(&models.AccountModel{}))
	assert.True(t, db.Migrator().HasTable(&models.SessionModel{}))
	assert.True(t, db.Migrator().HasIndex(&models.AccountModel{}, "Email"))
}
