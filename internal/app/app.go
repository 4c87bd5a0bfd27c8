package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/denmor86/upi-wallet/internal/client"
	"github.com/denmor86/upi-wallet/internal/config"
	"github.com/denmor86/upi-wallet/internal/guard"
	"github.com/denmor86/upi-wallet/internal/logger"
	"github.com/denmor86/upi-wallet/internal/notify"
	"github.com/denmor86/upi-wallet/internal/services"
	"github.com/denmor86/upi-wallet/internal/session"
)

func Run(config config.Config) {

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storage, notifier, cleanup, err := BuildInfra(ctx, config)
	if err != nil {
		logger.Error("Failed to initialize client:", err)
		return
	}
	defer cleanup()

	store := session.NewStore(storage)
	api := client.NewClient(config.APIAddr, &http.Client{Timeout: 15 * time.Second})
	status := services.NewStatus(config.StatusTTL)
	identity := services.NewIdentity(api, store, notifier)

	g := guard.New(store, notifier)
	g.Start(ctx)
	defer g.Close()

	terminal := NewTerminal(config, api, store, status, identity, g)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		defer close(done)
		logger.Info("Starting wallet client, API:", config.APIAddr)
		terminal.Run(ctx)
	}()

	select {
	case <-stop:
		logger.Info("Shutdown client")
		cancel()
		// запросы, начатые до остановки, довершаются в фоне и игнорируются
	case <-done:
	}
	terminal.Close()
	logger.Info("Client stopped")
}

// BuildInfra выбирает хранилище сессии и канал сигнала по настройкам:
// с Redis сессия и уведомления общие для всех запущенных клиентов,
// без него - файл на диске и уведомления только внутри процесса.
func BuildInfra(ctx context.Context, config config.Config) (session.SlotStorage, *notify.Notifier, func(), error) {
	if config.RedisURL != "" {
		redisClient, err := session.NewRedisClient(ctx, config.RedisURL)
		if err != nil {
			return nil, nil, nil, err
		}
		bus := notify.NewBus()
		bridge := notify.NewRedisBridge(redisClient, bus)
		bridge.Start(ctx)

		cleanup := func() {
			bridge.Stop()
			redisClient.Close()
		}
		return session.NewRedisStorage(redisClient), notify.NewBridgedNotifier(bridge), cleanup, nil
	}

	return session.NewFileStorage(config.SessionPath()), notify.NewNotifier(), func() {}, nil
}
