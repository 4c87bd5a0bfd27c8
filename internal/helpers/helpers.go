package helpers

import (
	"fmt"

	"github.com/denmor86/upi-wallet/internal/models"
	"github.com/shopspring/decimal"
)

// FormatAmount - представление суммы для вывода в терминал
func FormatAmount(amount decimal.Decimal) string {
	return "₹" + amount.StringFixed(2)
}

// FormatTransaction - строка истории: направление перевода определяется
// относительно кошелька пользователя
func FormatTransaction(transaction models.Transaction, upiID string) string {
	date := ""
	if !transaction.Date.IsZero() {
		date = transaction.Date.Format("02.01.2006 15:04")
	}
	if transaction.Outgoing(upiID) {
		return fmt.Sprintf("%s  -%s  to %s", date, FormatAmount(transaction.Amount), transaction.ReceiverUpi)
	}
	return fmt.Sprintf("%s  +%s  from %s", date, FormatAmount(transaction.Amount), transaction.SenderUpi)
}
