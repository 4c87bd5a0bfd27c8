package services

import (
	"context"
	"errors"
	"strings"

	"github.com/denmor86/upi-wallet/internal/client"
	"github.com/denmor86/upi-wallet/internal/logger"
	"github.com/denmor86/upi-wallet/internal/models"
	"github.com/denmor86/upi-wallet/internal/notify"
	"github.com/denmor86/upi-wallet/internal/session"
	"github.com/denmor86/upi-wallet/internal/validators"
)

var (
	ErrInvalidPhoneNumber = errors.New("invalid phone number")
	ErrInvalidPin         = errors.New("invalid pin")
	ErrEmptyName          = errors.New("name is required")
	ErrEmptyUpiID         = errors.New("upi id is required")
)

// IdentityService - сервис входа, регистрации и выхода
type IdentityService interface {
	Login(ctx context.Context, phoneNumber string, pin string) (*models.Identity, error)
	Register(ctx context.Context, request models.RegisterRequest) error
	Logout(ctx context.Context) error
}

type Identity struct {
	Client  client.WalletAPI
	Session *session.Store
	Notify  *notify.Notifier
}

// Создание сервиса
func NewIdentity(api client.WalletAPI, store *session.Store, notifier *notify.Notifier) IdentityService {
	return &Identity{Client: api, Session: store, Notify: notifier}
}

// Login аутентифицирует пользователя. При успехе запись пользователя
// сохраняется в хранилище сессии и рассылается сигнал смены сессии.
func (s *Identity) Login(ctx context.Context, phoneNumber string, pin string) (*models.Identity, error) {
	logger.Info("Login user:", phoneNumber)

	request := models.LoginRequest{
		PhoneNumber: strings.TrimSpace(phoneNumber),
		Pin:         strings.TrimSpace(pin),
	}
	user, err := s.Client.Login(ctx, request)
	if err != nil {
		logger.Warn("Login failed:", err)
		return nil, err
	}

	if err := s.Session.WriteIdentity(ctx, user); err != nil {
		logger.Error("Failed to persist session:", err)
		return nil, err
	}
	s.Notify.EmitAuthChanged(ctx)

	logger.Info("User authenticated:", user.UpiID)
	return user, nil
}

// Register регистрирует нового пользователя. Сессия при этом не создаётся:
// после успешной регистрации пользователь проходит обычный вход.
func (s *Identity) Register(ctx context.Context, request models.RegisterRequest) error {
	logger.Info("Register user:", request.PhoneNumber)

	request.Name = strings.TrimSpace(request.Name)
	request.UpiID = strings.TrimSpace(request.UpiID)
	if request.Name == "" {
		return ErrEmptyName
	}
	if request.UpiID == "" {
		return ErrEmptyUpiID
	}
	if !validators.CheckPhoneNumber(request.PhoneNumber) {
		return ErrInvalidPhoneNumber
	}
	if !validators.CheckPin(request.Pin) {
		return ErrInvalidPin
	}

	if err := s.Client.Register(ctx, request); err != nil {
		logger.Warn("Registration failed:", err)
		return err
	}
	return nil
}

// Logout удаляет сохранённую сессию и рассылает сигнал смены сессии
func (s *Identity) Logout(ctx context.Context) error {
	if err := s.Session.ClearIdentity(ctx); err != nil {
		logger.Error("Failed to clear session:", err)
		return err
	}
	s.Notify.EmitAuthChanged(ctx)
	return nil
}
