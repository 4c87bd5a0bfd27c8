package guard

import (
	"context"
	"sync"

	"github.com/denmor86/upi-wallet/internal/logger"
	"github.com/denmor86/upi-wallet/internal/notify"
	"github.com/denmor86/upi-wallet/internal/session"
)

// View - экран клиента
type View string

const (
	ViewLoading   View = "loading"
	ViewLogin     View = "login"
	ViewRegister  View = "register"
	ViewDashboard View = "dashboard"
)

// Guard следит за состоянием сессии и определяет доступный экран.
// Работает всё время жизни приложения: на каждый сигнал смены сессии
// состояние перечитывается из хранилища.
type Guard struct {
	Session *session.Store

	events    <-chan struct{}
	cancel    func()
	waitGroup sync.WaitGroup

	mu      sync.Mutex
	current View
}

// Создание сторожа маршрутов с подпиской на сигнал смены сессии
func New(store *session.Store, notifier *notify.Notifier) *Guard {
	g := &Guard{Session: store, current: ViewLoading}
	g.events, g.cancel = notifier.Subscribe()
	return g
}

// Start выполняет первоначальное чтение сессии и запускает наблюдение в фоне
func (g *Guard) Start(ctx context.Context) {
	g.refresh(ctx)

	g.waitGroup.Add(1)
	go func() {
		defer g.waitGroup.Done()
		for range g.events {
			g.refresh(ctx)
		}
	}()
}

// Close отписывается от сигнала и дожидается завершения наблюдения
func (g *Guard) Close() {
	g.cancel()
	g.waitGroup.Wait()
}

// Current возвращает текущий экран
func (g *Guard) Current() View {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current
}

// Navigate применяет политику переходов к запрошенному экрану:
// аутентифицированного с экранов входа уводит на кошелёк, неаутентифицированного
// с кошелька - на вход, неизвестный экран выбирается по состоянию сессии.
func (g *Guard) Navigate(ctx context.Context, requested View) View {
	authenticated := g.Session.DeriveState(ctx).IsAuthenticated

	var next View
	switch requested {
	case ViewLogin, ViewRegister:
		if authenticated {
			next = ViewDashboard
		} else {
			next = requested
		}
	case ViewDashboard:
		if authenticated {
			next = ViewDashboard
		} else {
			next = ViewLogin
		}
	default:
		if authenticated {
			next = ViewDashboard
		} else {
			next = ViewLogin
		}
	}

	g.mu.Lock()
	g.current = next
	g.mu.Unlock()
	return next
}

// refresh перечитывает состояние сессии и выполняет переход
func (g *Guard) refresh(ctx context.Context) {
	state := g.Session.DeriveState(ctx)

	g.mu.Lock()
	defer g.mu.Unlock()

	previous := g.current
	switch {
	case state.IsAuthenticated && g.current != ViewDashboard:
		g.current = ViewDashboard
	case !state.IsAuthenticated && (g.current == ViewDashboard || g.current == ViewLoading):
		g.current = ViewLogin
	}
	if g.current != previous {
		logger.Debug("View transition:", previous, "->", g.current)
	}
}
