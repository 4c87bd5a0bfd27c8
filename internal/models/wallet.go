package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction - модель перевода средств, данные принадлежат серверу и доступны только для чтения
type Transaction struct {
	ID          string
	SenderUpi   string
	ReceiverUpi string
	Amount      decimal.Decimal
	Date        time.Time
}

// Outgoing - перевод считается исходящим, если отправитель совпадает с UPI ID пользователя
func (t *Transaction) Outgoing(upiID string) bool {
	return t.SenderUpi == upiID
}

// WalletView - модель состояния кошелька на экране, полностью заменяется при загрузке
type WalletView struct {
	Balance decimal.Decimal
	History []Transaction
}

// AddMoneyRequest - модель запроса пополнения кошелька
type AddMoneyRequest struct {
	UpiID  string  `json:"upiId"`
	Amount float64 `json:"amount"`
}

// SendMoneyRequest - модель запроса перевода средств
type SendMoneyRequest struct {
	SenderUpi   string  `json:"senderUpi"`
	ReceiverUpi string  `json:"receiverUpi"`
	Amount      float64 `json:"amount"`
}
