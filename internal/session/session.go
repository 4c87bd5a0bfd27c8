package session

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/denmor86/upi-wallet/internal/logger"
	"github.com/denmor86/upi-wallet/internal/models"
)

// Store - сервис доступа к сохранённой сессии поверх хранилища слота
type Store struct {
	Storage SlotStorage
}

// Создание сервиса сессии
func NewStore(storage SlotStorage) *Store {
	return &Store{Storage: storage}
}

// ReadIdentity читает сохранённую запись пользователя.
// Отсутствующая или повреждённая запись равнозначна отсутствию сессии.
func (s *Store) ReadIdentity(ctx context.Context) *models.Identity {
	data, err := s.Storage.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrNoSession) {
			logger.Warn("Failed to load session record:", err)
		}
		return nil
	}

	var identity models.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		logger.Warn("Malformed session record, treating as logged out:", err)
		return nil
	}
	return &identity
}

// DeriveState вычисляет состояние сессии из хранилища. Без побочных эффектов.
func (s *Store) DeriveState(ctx context.Context) models.SessionState {
	user := s.ReadIdentity(ctx)
	return models.SessionState{User: user, IsAuthenticated: user.Valid()}
}

// WriteIdentity сохраняет запись пользователя, заменяя предыдущую целиком
func (s *Store) WriteIdentity(ctx context.Context, identity *models.Identity) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	return s.Storage.Save(ctx, data)
}

// ClearIdentity удаляет сохранённую запись пользователя
func (s *Store) ClearIdentity(ctx context.Context) error {
	return s.Storage.Clear(ctx)
}
