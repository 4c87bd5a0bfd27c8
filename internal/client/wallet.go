package client

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/denmor86/upi-wallet/internal/models"
	"github.com/shopspring/decimal"
)

// Операции клиента и запасные тексты ошибок для каждой из них
const (
	OpRegister = "register"
	OpLogin    = "login"
	OpBalance  = "balance"
	OpDeposit  = "deposit"
	OpTransfer = "transfer"
	OpHistory  = "history"

	registerFallback = "Registration failed"
	loginFallback    = "Login failed"
	balanceFallback  = "Failed to load wallet data"
	historyFallback  = "Failed to load wallet data"
	depositFallback  = "Failed to add money"
	transferFallback = "Transaction failed"
)

// WalletAPI - контракт удалённого сервиса кошелька
type WalletAPI interface {
	Register(ctx context.Context, request models.RegisterRequest) error
	Login(ctx context.Context, request models.LoginRequest) (*models.Identity, error)
	GetBalance(ctx context.Context, upiID string) (decimal.Decimal, error)
	AddMoney(ctx context.Context, upiID string, amount decimal.Decimal) error
	SendMoney(ctx context.Context, senderUpi string, receiverUpi string, amount decimal.Decimal) error
	GetHistory(ctx context.Context, upiID string) ([]models.Transaction, error)
}

// Register - регистрация нового пользователя
func (c *Client) Register(ctx context.Context, request models.RegisterRequest) error {
	envelope, err := c.do(ctx, http.MethodPost, "/users/register", request, OpRegister, registerFallback)
	if err != nil {
		return err
	}
	if !envelope.Success {
		message := envelope.Message
		if message == "" {
			message = registerFallback
		}
		return &APIError{Op: OpRegister, Message: message}
	}
	return nil
}

// Login - аутентификация, возвращает запись пользователя из ответа сервера
func (c *Client) Login(ctx context.Context, request models.LoginRequest) (*models.Identity, error) {
	envelope, err := c.do(ctx, http.MethodPost, "/users/login", request, OpLogin, loginFallback)
	if err != nil {
		return nil, err
	}
	if !envelope.Success || len(envelope.Data) == 0 {
		message := envelope.Message
		if message == "" {
			message = loginFallback
		}
		return nil, &APIError{Op: OpLogin, Message: message}
	}

	var identity models.Identity
	if err := json.Unmarshal(envelope.Data, &identity); err != nil {
		return nil, &APIError{Op: OpLogin, Message: loginFallback, Err: err}
	}
	return &identity, nil
}

// GetBalance - запрос текущего баланса кошелька.
// Отсутствующее или нечисловое значение баланса приводится к нулю.
func (c *Client) GetBalance(ctx context.Context, upiID string) (decimal.Decimal, error) {
	envelope, err := c.do(ctx, http.MethodGet, "/wallet/"+upiID, nil, OpBalance, balanceFallback)
	if err != nil {
		return decimal.Zero, err
	}

	var payload struct {
		Balance json.RawMessage `json:"balance"`
	}
	// форме ответа не доверяем: не объект - значит баланса нет
	_ = json.Unmarshal(envelope.Data, &payload)
	return normalizeBalance(payload.Balance), nil
}

// AddMoney - пополнение кошелька
func (c *Client) AddMoney(ctx context.Context, upiID string, amount decimal.Decimal) error {
	request := models.AddMoneyRequest{UpiID: upiID, Amount: amount.InexactFloat64()}
	_, err := c.do(ctx, http.MethodPost, "/wallet/add", request, OpDeposit, depositFallback)
	return err
}

// SendMoney - перевод средств на другой кошелёк
func (c *Client) SendMoney(ctx context.Context, senderUpi string, receiverUpi string, amount decimal.Decimal) error {
	request := models.SendMoneyRequest{
		SenderUpi:   senderUpi,
		ReceiverUpi: receiverUpi,
		Amount:      amount.InexactFloat64(),
	}
	_, err := c.do(ctx, http.MethodPost, "/transaction/send", request, OpTransfer, transferFallback)
	return err
}

// transactionPayload - модель перевода в ответе сервера
type transactionPayload struct {
	ID          json.Number `json:"id"`
	SenderUpi   string      `json:"senderUpi"`
	ReceiverUpi string      `json:"receiverUpi"`
	Amount      float64     `json:"amount"`
	Date        string      `json:"date"`
}

// GetHistory - запрос истории переводов, порядок определяет сервер.
// Ответ неожиданной формы приводится к пустой истории.
func (c *Client) GetHistory(ctx context.Context, upiID string) ([]models.Transaction, error) {
	envelope, err := c.do(ctx, http.MethodGet, "/transaction/history/"+upiID, nil, OpHistory, historyFallback)
	if err != nil {
		return nil, err
	}

	var payload []transactionPayload
	if err := json.Unmarshal(envelope.Data, &payload); err != nil {
		return []models.Transaction{}, nil
	}

	history := make([]models.Transaction, 0, len(payload))
	for _, item := range payload {
		history = append(history, models.Transaction{
			ID:          item.ID.String(),
			SenderUpi:   item.SenderUpi,
			ReceiverUpi: item.ReceiverUpi,
			Amount:      decimal.NewFromFloat(item.Amount),
			Date:        parseDate(item.Date),
		})
	}
	return history, nil
}

func normalizeBalance(raw json.RawMessage) decimal.Decimal {
	if len(raw) == 0 {
		return decimal.Zero
	}
	var value float64
	if err := json.Unmarshal(raw, &value); err != nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(value)
}

// parseDate разбирает дату перевода, сервер может прислать её с зоной или без
func parseDate(value string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05"} {
		if date, err := time.Parse(layout, value); err == nil {
			return date
		}
	}
	return time.Time{}
}
