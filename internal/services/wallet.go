package services

import (
	"context"
	"errors"
	"sync"

	"github.com/denmor86/upi-wallet/internal/client"
	"github.com/denmor86/upi-wallet/internal/logger"
	"github.com/denmor86/upi-wallet/internal/models"
	"github.com/denmor86/upi-wallet/internal/validators"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNoWallet         = errors.New("session has no wallet identifier")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidTransfer  = errors.New("invalid transfer data")
	ErrOperationPending = errors.New("operation already in progress")
)

// WalletService - оркестратор операций кошелька для одного пользователя
type WalletService interface {
	LoadData(ctx context.Context) error
	Deposit(ctx context.Context, amount decimal.Decimal) error
	Transfer(ctx context.Context, receiverUpi string, amount decimal.Decimal) error
	View() models.WalletView
	Pending() bool
}

// Wallet держит состояние кошелька на экране в соответствии с удалённым сервисом.
// Баланс никогда не вычисляется локально: после каждой операции данные
// перечитываются с сервера как с единственного источника истины.
type Wallet struct {
	Client client.WalletAPI
	Status *Status

	user    models.Identity
	mu      sync.Mutex
	view    models.WalletView
	pending bool
}

// Создание оркестратора для аутентифицированного пользователя
func NewWallet(api client.WalletAPI, status *Status, user models.Identity) *Wallet {
	return &Wallet{Client: api, Status: status, user: user}
}

// LoadData перечитывает баланс и историю. Повторные вызовы безопасны:
// состояние всегда заменяется целиком, а не дополняется.
func (s *Wallet) LoadData(ctx context.Context) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()
	return s.reload(ctx)
}

// Deposit пополняет кошелёк. Сумма проверяется до обращения к серверу,
// поле ввода очищается вызывающей стороной только при успехе.
func (s *Wallet) Deposit(ctx context.Context, amount decimal.Decimal) error {
	if s.user.UpiID == "" {
		return ErrNoWallet
	}
	if !validators.CheckAmount(amount) {
		s.Status.Error("Enter valid amount")
		return ErrInvalidAmount
	}
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	if err := s.Client.AddMoney(ctx, s.user.UpiID, amount); err != nil {
		logger.Warn("Failed to add money:", err)
		s.Status.Error(err.Error())
		return err
	}

	s.Status.Success("Money added successfully")
	if err := s.reload(ctx); err != nil {
		logger.Warn("Failed to reload wallet after deposit:", err)
	}
	return nil
}

// Transfer переводит средства на другой кошелёк. Поля формы проверяются до
// обращения к серверу; при ошибке форма сохраняется для повторной попытки.
func (s *Wallet) Transfer(ctx context.Context, receiverUpi string, amount decimal.Decimal) error {
	if s.user.UpiID == "" {
		return ErrNoWallet
	}
	if !validators.CheckReceiver(receiverUpi) || !validators.CheckAmount(amount) {
		s.Status.Error("Fill all fields correctly")
		return ErrInvalidTransfer
	}
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	if err := s.Client.SendMoney(ctx, s.user.UpiID, receiverUpi, amount); err != nil {
		logger.Warn("Failed to send money:", err)
		s.Status.Error(err.Error())
		return err
	}

	s.Status.Success("Money sent successfully")
	if err := s.reload(ctx); err != nil {
		logger.Warn("Failed to reload wallet after transfer:", err)
	}
	return nil
}

// View возвращает снимок состояния кошелька
func (s *Wallet) View() models.WalletView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Pending сообщает, выполняется ли операция: на это время элементы
// управления блокируются, чтобы исключить повторную отправку
func (s *Wallet) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// reload запрашивает баланс и историю параллельно и применяет оба результата
// одним обновлением. При любой ошибке прежнее состояние остаётся нетронутым.
func (s *Wallet) reload(ctx context.Context) error {
	var (
		balance decimal.Decimal
		history []models.Transaction
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		balance, err = s.Client.GetBalance(groupCtx, s.user.UpiID)
		return err
	})
	group.Go(func() error {
		var err error
		history, err = s.Client.GetHistory(groupCtx, s.user.UpiID)
		return err
	})

	if err := group.Wait(); err != nil {
		logger.Warn("Failed to load wallet data:", err)
		s.Status.Error(err.Error())
		return err
	}

	s.mu.Lock()
	s.view = models.WalletView{Balance: balance, History: history}
	s.mu.Unlock()
	return nil
}

func (s *Wallet) begin() error {
	if s.user.UpiID == "" {
		return ErrNoWallet
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending {
		return ErrOperationPending
	}
	s.pending = true
	return nil
}

func (s *Wallet) end() {
	s.mu.Lock()
	s.pending = false
	s.mu.Unlock()
}
