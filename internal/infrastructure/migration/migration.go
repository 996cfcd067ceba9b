// Package migration brings the schema of the warden tables up to date.
package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/warden-inc/warden/internal/shared/logger"
)

// Strategy applies schema changes for a set of models.
type Strategy interface {
	Migrate(db *gorm.DB, models ...interface{}) error
	GetName() string
}

// GormAutoMigrateStrategy creates missing tables, columns and indexes. It never drops anything.
type GormAutoMigrateStrategy struct{}

func NewGormAutoMigrateStrategy() *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm-automigrate"
}

type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

func NewManager() *Manager {
	return NewManagerWithStrategy(NewGormAutoMigrateStrategy())
}

func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.WithComponent("migration.manager"),
	}
}

// Migrate runs the strategy over models, defaulting to every warden model.
func (m *Manager) Migrate(db *gorm.DB, models ...interface{}) error {
	if len(models) == 0 {
		models = AutoMigrateModels()
	}

	m.logger.Infow("starting database migration",
		"strategy", m.strategy.GetName(),
		"models_count", len(models))

	if err := m.strategy.Migrate(db, models...); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return err
	}

	m.logger.Infow("database migration completed", "strategy", m.strategy.GetName())
	return nil
}
