package validators

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CheckAmount проверяет сумму операции, допустимы только положительные значения
func CheckAmount(amount decimal.Decimal) bool {
	return amount.GreaterThan(decimal.Zero)
}

// CheckReceiver проверяет идентификатор получателя перевода
func CheckReceiver(upiID string) bool {
	return strings.TrimSpace(upiID) != ""
}

// CheckPhoneNumber проверяет номер телефона: ровно 10 цифр
func CheckPhoneNumber(number string) bool {
	number = strings.TrimSpace(number)
	if len(number) != 10 {
		return false
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// CheckPin проверяет PIN-код: от 4 до 6 цифр
func CheckPin(pin string) bool {
	pin = strings.TrimSpace(pin)
	if len(pin) < 4 || len(pin) > 6 {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
