package models

// Identity - модель данных пользователя кошелька, сохраняется между запусками клиента
type Identity struct {
	ID          string `json:"id"`
	UpiID       string `json:"upiId"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// Valid - сессия считается действительной только при наличии идентификатора и UPI ID
func (i *Identity) Valid() bool {
	return i != nil && i.ID != "" && i.UpiID != ""
}

// SessionState - производное состояние сессии, всегда вычисляется из хранилища
type SessionState struct {
	User            *Identity
	IsAuthenticated bool
}

// RegisterRequest - модель запроса регистрации нового пользователя
type RegisterRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	UpiID       string `json:"upiId"`
	Pin         string `json:"pin"`
}

// LoginRequest - модель запроса аутентификации пользователя
type LoginRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Pin         string `json:"pin"`
}
