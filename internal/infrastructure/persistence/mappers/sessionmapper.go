package mappers

import (
	"github.com/warden-inc/warden/internal/domain/session"
	"github.com/warden-inc/warden/internal/infrastructure/persistence/models"
)

// SessionMapper handles the conversion between Session domain entities and persistence models.
type SessionMapper interface {
	ToModel(entity *session.Session) *models.SessionModel
	ToDomain(model *models.SessionModel) *session.Session
}

// SessionMapperImpl is the concrete implementation of SessionMapper.
type SessionMapperImpl struct{}

// NewSessionMapper creates a new SessionMapper.
func NewSessionMapper() SessionMapper {
	return &SessionMapperImpl{}
}

func (m *SessionMapperImpl) ToModel(entity *session.Session) *models.SessionModel {
	if entity == nil {
		return nil
	}
	return &models.SessionModel{
		AccountID:    entity.AccountID,
		SessionToken: entity.SessionToken,
		IsActive:     entity.IsActive,
		LastLogin:    entity.LastLogin.UTC(),
	}
}

func (m *SessionMapperImpl) ToDomain(model *models.SessionModel) *session.Session {
	if model == nil {
		return nil
	}
	return &session.Session{
		AccountID:    model.AccountID,
		SessionToken: model.SessionToken,
		IsActive:     model.IsActive,
		LastLogin:    model.LastLogin.UTC(),
	}
}
