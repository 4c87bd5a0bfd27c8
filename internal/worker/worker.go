package worker

import (
	"context"
	"sync"
	"time"

	"github.com/denmor86/upi-wallet/internal/logger"
	"github.com/denmor86/upi-wallet/internal/services"
	"github.com/sony/gobreaker"
)

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "wallet-api",
		Timeout: 30 * time.Second, // через 30 сек пробуем подключиться
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 5 попыток достучатся до сервиса
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit Breaker '%s': %s → %s", name, from, to)
		},
	})
}

// RefreshWorker - фоновый воркер обновления кошелька: длительно работающий
// клиент подтягивает переводы, поступившие от других пользователей
type RefreshWorker struct {
	Wallet       services.WalletService
	Breaker      *gobreaker.CircuitBreaker
	WaitGroup    sync.WaitGroup
	QuitChan     chan struct{}
	PollInterval time.Duration
}

// NewRefreshWorker - конструктор фонового воркера обновления
func NewRefreshWorker(wallet services.WalletService, interval time.Duration) *RefreshWorker {
	return &RefreshWorker{
		Wallet:       wallet,
		Breaker:      InitCircuitBreaker(),
		QuitChan:     make(chan struct{}),
		PollInterval: interval,
	}
}

// Start - запускает воркер в фоне
func (w *RefreshWorker) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер
func (w *RefreshWorker) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Run - основная рабочая логика
func (w *RefreshWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("RefreshWorker signal stop")
			return
		case <-ticker.C:
			w.Refresh(ctx)
		}
	}
}

// Refresh - однократное обновление состояния кошелька
func (w *RefreshWorker) Refresh(ctx context.Context) {
	if w.Breaker.State() == gobreaker.StateOpen {
		logger.Warn(w.Breaker.Name(), "unavailable. Waiting...")
		return
	}
	// не мешаем операции, запущенной пользователем
	if w.Wallet.Pending() {
		return
	}

	_, err := w.Breaker.Execute(func() (interface{}, error) {
		return nil, w.Wallet.LoadData(ctx)
	})
	if err != nil {
		logger.Warn("Failed to refresh wallet:", err)
	}
}
