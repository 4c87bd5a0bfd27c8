package notify

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/denmor86/upi-wallet/internal/config"
	"github.com/denmor86/upi-wallet/internal/logger"
	"github.com/denmor86/upi-wallet/internal/models"
	"github.com/denmor86/upi-wallet/internal/session"
	"github.com/redis/go-redis/v9"
)

func initTestLogger(t *testing.T) {
	t.Helper()
	config := config.DefaultConfig()
	if err := logger.Initialize(config.LogLevel); err != nil {
		t.Fatalf("can't initialize logger: %v", err)
	}
}

func waitSignal(t *testing.T, ch <-chan struct{}, timeout time.Duration) bool {
	t.Helper()
	select {
	case _, ok := <-ch:
		return ok
	case <-time.After(timeout):
		return false
	}
}

func TestBus_PublishSubscribe(t *testing.T) {
	initTestLogger(t)

	bus := NewBus()
	first, cancelFirst := bus.Subscribe()
	second, cancelSecond := bus.Subscribe()
	defer cancelSecond()

	bus.Publish()

	if !waitSignal(t, first, time.Second) {
		t.Errorf("Expected first subscriber to be notified")
	}
	if !waitSignal(t, second, time.Second) {
		t.Errorf("Expected second subscriber to be notified")
	}

	// после отписки канал закрывается и уведомления не приходят
	cancelFirst()
	if _, ok := <-first; ok {
		t.Errorf("Expected closed channel after unsubscribe")
	}
	bus.Publish()
	if !waitSignal(t, second, time.Second) {
		t.Errorf("Expected remaining subscriber to be notified")
	}
}

func TestBus_CoalescesNotifications(t *testing.T) {
	initTestLogger(t)

	bus := NewBus()
	ch, cancel := bus.Subscribe()
	defer cancel()

	// наблюдателю важен факт изменения: лишние публикации не накапливаются
	bus.Publish()
	bus.Publish()
	bus.Publish()

	if !waitSignal(t, ch, time.Second) {
		t.Errorf("Expected notification")
	}
	select {
	case <-ch:
		t.Errorf("Expected coalesced notifications, got extra one")
	default:
	}
}

// После записи сессии и сигнала каждый наблюдатель при перечитывании видит новую запись
func TestNotifier_WriteThenEmit(t *testing.T) {
	initTestLogger(t)

	store := session.NewStore(session.NewMemoryStorage())
	notifier := NewNotifier()
	ch, cancel := notifier.Subscribe()
	defer cancel()

	ctx := context.Background()
	identity := &models.Identity{ID: "u1", UpiID: "u1@bank", Name: "A"}
	if err := store.WriteIdentity(ctx, identity); err != nil {
		t.Fatalf("write: %v", err)
	}
	notifier.EmitAuthChanged(ctx)

	if !waitSignal(t, ch, time.Second) {
		t.Fatalf("Expected notification after emit")
	}
	state := store.DeriveState(ctx)
	if !state.IsAuthenticated || state.User == nil || state.User.UpiID != "u1@bank" {
		t.Errorf("Expected derived state to reflect written identity, got: '%+v'", state)
	}
}

func TestRedisBridge_CrossProcess(t *testing.T) {
	initTestLogger(t)

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer mr.Close()

	ctx := context.Background()

	// два моста имитируют два одновременно запущенных клиента
	firstClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer firstClient.Close()
	secondClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer secondClient.Close()

	firstBus := NewBus()
	firstBridge := NewRedisBridge(firstClient, firstBus)
	firstBridge.Start(ctx)
	defer firstBridge.Stop()
	first := NewBridgedNotifier(firstBridge)

	secondBus := NewBus()
	secondBridge := NewRedisBridge(secondClient, secondBus)
	secondBridge.Start(ctx)
	defer secondBridge.Stop()
	second := NewBridgedNotifier(secondBridge)

	// подписка в обоих процессах
	firstCh, cancelFirst := first.Subscribe()
	defer cancelFirst()
	secondCh, cancelSecond := second.Subscribe()
	defer cancelSecond()

	// даём подписке pub/sub установиться
	time.Sleep(100 * time.Millisecond)

	first.EmitAuthChanged(ctx)

	// отправитель уведомлён локальной шиной, получатель - через Redis
	if !waitSignal(t, firstCh, 2*time.Second) {
		t.Errorf("Expected local notification in emitting process")
	}
	if !waitSignal(t, secondCh, 2*time.Second) {
		t.Errorf("Expected cross-process notification")
	}

	// эхо собственного сообщения отбрасывается: повторного уведомления нет
	select {
	case <-firstCh:
		t.Errorf("Expected no echo of own message via redis")
	case <-time.After(200 * time.Millisecond):
	}
}
