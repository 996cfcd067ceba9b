package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/warden-inc/warden/internal/domain/session"
	"github.com/warden-inc/warden/internal/infrastructure/persistence/mappers"
	"github.com/warden-inc/warden/internal/infrastructure/persistence/models"
	"github.com/warden-inc/warden/internal/shared/db"
)

// SessionRepository keeps one row per account in the sessions table.
type SessionRepository struct {
	db     *gorm.DB
	mapper mappers.SessionMapper
}

func NewSessionRepository(db *gorm.DB) session.Repository {
	return &SessionRepository{
		db:     db,
		mapper: mappers.NewSessionMapper(),
	}
}

func (r *SessionRepository) Get(ctx context.Context, accountID uint) (*session.Session, error) {
	var model models.SessionModel
	err := db.GetTxFromContext(ctx, r.db).Where("account_id = ?", accountID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, session.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *SessionRepository) Upsert(ctx context.Context, accountID uint, sessionToken string, lastLogin time.Time) error {
	model := r.mapper.ToModel(&session.Session{
		AccountID:    accountID,
		SessionToken: &sessionToken,
		IsActive:     true,
		LastLogin:    lastLogin,
	})

	err := db.GetTxFromContext(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "account_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"session_token", "is_active", "last_login"}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert session: %w", err)
	}
	return nil
}

// Invalidate keeps the row. Invalidating a missing or already inactive session is not an error.
func (r *SessionRepository) Invalidate(ctx context.Context, accountID uint) error {
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.SessionModel{}).
		Where("account_id = ?", accountID).
		Updates(map[string]interface{}{
			"session_token": nil,
			"is_active":     false,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to invalidate session: %w", err)
	}
	return nil
}
