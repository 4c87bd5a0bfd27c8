package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/denmor86/upi-wallet/internal/client"
	"github.com/denmor86/upi-wallet/internal/config"
	"github.com/denmor86/upi-wallet/internal/guard"
	"github.com/denmor86/upi-wallet/internal/helpers"
	"github.com/denmor86/upi-wallet/internal/models"
	"github.com/denmor86/upi-wallet/internal/services"
	"github.com/denmor86/upi-wallet/internal/session"
	"github.com/denmor86/upi-wallet/internal/worker"
	"github.com/shopspring/decimal"
)

// Terminal - интерактивный цикл клиента: показывает экран, разрешённый
// сторожем маршрутов, и передаёт ввод пользователя сервисам
type Terminal struct {
	Config   config.Config
	API      client.WalletAPI
	Store    *session.Store
	Status   *services.Status
	Identity services.IdentityService
	Guard    *guard.Guard

	scanner *bufio.Scanner
	out     io.Writer

	wallet    *services.Wallet
	refresher *worker.RefreshWorker
}

// Создание терминала
func NewTerminal(cfg config.Config, api client.WalletAPI, store *session.Store,
	status *services.Status, identity services.IdentityService, g *guard.Guard) *Terminal {
	return &Terminal{
		Config:   cfg,
		API:      api,
		Store:    store,
		Status:   status,
		Identity: identity,
		Guard:    g,
		scanner:  bufio.NewScanner(os.Stdin),
		out:      os.Stdout,
	}
}

// Run - основной цикл: выполняется до команды выхода или конца ввода
func (t *Terminal) Run(ctx context.Context) {
	for ctx.Err() == nil {
		var quit bool
		switch t.Guard.Current() {
		case guard.ViewLogin:
			t.closeWallet()
			quit = !t.loginScreen(ctx)
		case guard.ViewRegister:
			t.closeWallet()
			quit = !t.registerScreen(ctx)
		case guard.ViewDashboard:
			quit = !t.dashboardScreen(ctx)
		default:
			t.Guard.Navigate(ctx, guard.ViewLogin)
		}
		if quit {
			return
		}
	}
}

// Close освобождает ресурсы активного экрана
func (t *Terminal) Close() {
	t.closeWallet()
}

func (t *Terminal) loginScreen(ctx context.Context) bool {
	t.printStatus()
	fmt.Fprintln(t.out, "== Sign in == (commands: login, register, quit)")

	switch t.readLine("> ") {
	case "login":
		phone := t.readLine("phone number: ")
		pin := t.readLine("pin: ")
		if _, err := t.Identity.Login(ctx, phone, pin); err != nil {
			fmt.Fprintln(t.out, "error:", err)
			return true
		}
		t.Guard.Navigate(ctx, guard.ViewDashboard)
	case "register":
		t.Guard.Navigate(ctx, guard.ViewRegister)
	case "quit", "":
		return false
	}
	return true
}

func (t *Terminal) registerScreen(ctx context.Context) bool {
	fmt.Fprintln(t.out, "== Registration == (empty name to go back)")

	request := models.RegisterRequest{Name: t.readLine("name: ")}
	if strings.TrimSpace(request.Name) == "" {
		t.Guard.Navigate(ctx, guard.ViewLogin)
		return true
	}
	request.PhoneNumber = t.readLine("phone number: ")
	request.UpiID = t.readLine("upi id: ")
	request.Pin = t.readLine("pin: ")

	if err := t.Identity.Register(ctx, request); err != nil {
		fmt.Fprintln(t.out, "error:", err)
		return true
	}
	// после успешной регистрации пользователь проходит обычный вход
	fmt.Fprintln(t.out, "Registered. Please sign in.")
	t.Guard.Navigate(ctx, guard.ViewLogin)
	return true
}

func (t *Terminal) dashboardScreen(ctx context.Context) bool {
	state := t.Store.DeriveState(ctx)
	if !state.IsAuthenticated {
		// сессия без кошелька не подлежит восстановлению
		t.Guard.Navigate(ctx, guard.ViewLogin)
		return true
	}
	t.mountWallet(ctx, *state.User)

	view := t.wallet.View()
	t.printStatus()
	fmt.Fprintf(t.out, "== %s == balance: %s\n", state.User.Name, helpers.FormatAmount(view.Balance))
	fmt.Fprintln(t.out, "commands: add, send, history, refresh, logout, quit")

	switch t.readLine("> ") {
	case "add":
		amount := t.readAmount("amount: ")
		_ = t.wallet.Deposit(ctx, amount)
	case "send":
		receiver := t.readLine("receiver upi: ")
		amount := t.readAmount("amount: ")
		_ = t.wallet.Transfer(ctx, receiver, amount)
	case "history":
		t.printHistory(view.History, state.User.UpiID)
	case "refresh":
		_ = t.wallet.LoadData(ctx)
	case "logout":
		if err := t.Identity.Logout(ctx); err != nil {
			fmt.Fprintln(t.out, "error:", err)
		}
	case "quit", "":
		return false
	}
	return true
}

// mountWallet создаёт оркестратор кошелька при входе на экран и запускает
// фоновое обновление. Состояние живёт, пока пользователь не покинет экран.
func (t *Terminal) mountWallet(ctx context.Context, user models.Identity) {
	if t.wallet != nil {
		return
	}
	t.wallet = services.NewWallet(t.API, t.Status, user)
	if err := t.wallet.LoadData(ctx); err != nil {
		fmt.Fprintln(t.out, "error:", err)
	}
	t.refresher = worker.NewRefreshWorker(t.wallet, t.Config.RefreshInterval)
	t.refresher.Start(ctx)
}

func (t *Terminal) closeWallet() {
	if t.refresher != nil {
		t.refresher.Stop()
		t.refresher = nil
	}
	t.wallet = nil
}

func (t *Terminal) printStatus() {
	if message, ok := t.Status.Current(); ok {
		fmt.Fprintf(t.out, "[%s] %s\n", message.Kind, message.Text)
	}
}

func (t *Terminal) printHistory(history []models.Transaction, upiID string) {
	if len(history) == 0 {
		fmt.Fprintln(t.out, "no transactions yet")
		return
	}
	for _, transaction := range history {
		fmt.Fprintln(t.out, helpers.FormatTransaction(transaction, upiID))
	}
}

func (t *Terminal) readLine(prompt string) string {
	fmt.Fprint(t.out, prompt)
	if !t.scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(t.scanner.Text())
}

// readAmount разбирает сумму; нечисловой ввод отклонит проверка суммы
func (t *Terminal) readAmount(prompt string) decimal.Decimal {
	amount, err := decimal.NewFromString(t.readLine(prompt))
	if err != nil {
		return decimal.Zero
	}
	return amount
}
