package notify

import (
	"context"
	"sync"

	"github.com/denmor86/upi-wallet/internal/logger"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const authChannel = "upi-wallet:auth-changed"

// RedisBridge - межпроцессный канал сигнала синхронизации на основе Redis pub/sub.
// Каждое сообщение несёт идентификатор отправителя: собственное эхо отбрасывается,
// в процессе-отправителе уведомление уже разослано локальной шиной.
type RedisBridge struct {
	client    *redis.Client
	bus       *Bus
	origin    string
	pubsub    *redis.PubSub
	waitGroup sync.WaitGroup
}

// Создание межпроцессного канала поверх локальной шины
func NewRedisBridge(client *redis.Client, bus *Bus) *RedisBridge {
	return &RedisBridge{
		client: client,
		bus:    bus,
		origin: uuid.NewString(),
	}
}

// Start запускает приём сообщений из Redis в фоне
func (b *RedisBridge) Start(ctx context.Context) {
	b.pubsub = b.client.Subscribe(ctx, authChannel)

	b.waitGroup.Add(1)
	go func() {
		defer b.waitGroup.Done()
		for msg := range b.pubsub.Channel() {
			if msg.Payload == b.origin {
				continue
			}
			logger.Debug("Auth change received from another process")
			b.bus.Publish()
		}
	}()
}

// Stop корректно останавливает приём сообщений
func (b *RedisBridge) Stop() {
	if b.pubsub != nil {
		b.pubsub.Close()
	}
	b.waitGroup.Wait()
}

// Publish отправляет уведомление остальным процессам
func (b *RedisBridge) Publish(ctx context.Context) error {
	return b.client.Publish(ctx, authChannel, b.origin).Err()
}
