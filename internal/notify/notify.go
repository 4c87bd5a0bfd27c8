package notify

import (
	"context"
	"sync"

	"github.com/denmor86/upi-wallet/internal/logger"
)

// Bus - локальная шина уведомлений о смене сессии в рамках одного процесса.
// Рассылка синхронная, уведомления без данных: наблюдатель сам перечитывает хранилище.
type Bus struct {
	mu     sync.Mutex
	subs   map[int]chan struct{}
	nextID int
}

// Создание локальной шины
func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan struct{})}
}

// Subscribe регистрирует наблюдателя. Возвращает канал уведомлений и функцию отписки,
// после вызова которой канал закрывается и наблюдатель удаляется из шины.
func (b *Bus) Subscribe() (<-chan struct{}, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan struct{}, 1)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish уведомляет всех подписчиков. Непрочитанные уведомления схлопываются:
// наблюдателю важен сам факт изменения, а не их количество.
func (b *Bus) Publish() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Notifier - сигнал синхронизации сессии: локальный канал плюс, при наличии
// Redis, межпроцессный канал. Хранилище сессии само по себе не уведомляет
// процесс, выполнивший запись, поэтому локальная публикация обязательна.
type Notifier struct {
	Bus    *Bus
	Bridge *RedisBridge
}

// Создание сигнала без межпроцессного канала
func NewNotifier() *Notifier {
	return &Notifier{Bus: NewBus()}
}

// Создание сигнала с межпроцессным каналом через Redis
func NewBridgedNotifier(bridge *RedisBridge) *Notifier {
	return &Notifier{Bus: bridge.bus, Bridge: bridge}
}

// EmitAuthChanged рассылает уведомление о смене сессии всем наблюдателям:
// сначала в текущем процессе, затем остальным процессам через Redis.
func (n *Notifier) EmitAuthChanged(ctx context.Context) {
	n.Bus.Publish()
	if n.Bridge != nil {
		if err := n.Bridge.Publish(ctx); err != nil {
			logger.Warn("Failed to publish auth change to redis:", err)
		}
	}
}

// Subscribe - подписка на уведомления о смене сессии
func (n *Notifier) Subscribe() (<-chan struct{}, func()) {
	return n.Bus.Subscribe()
}
