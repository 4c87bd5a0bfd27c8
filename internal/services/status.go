package services

import (
	"sync"
	"time"
)

// MessageKind - вид сообщения о результате операции
type MessageKind string

const (
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
)

// StatusMessage - временное сообщение для пользователя
type StatusMessage struct {
	Text string
	Kind MessageKind
}

// Status - сервис временных сообщений. Новое сообщение немедленно вытесняет
// предыдущее и само исчезает по истечении срока, независимо от других операций.
type Status struct {
	mu      sync.Mutex
	ttl     time.Duration
	current StatusMessage
	present bool
	seq     uint64
}

// Создание сервиса сообщений со сроком показа
func NewStatus(ttl time.Duration) *Status {
	return &Status{ttl: ttl}
}

// Set устанавливает сообщение и планирует его сброс
func (s *Status) Set(text string, kind MessageKind) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.current = StatusMessage{Text: text, Kind: kind}
	s.present = true
	s.mu.Unlock()

	time.AfterFunc(s.ttl, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		// таймер вытесненного сообщения ничего не сбрасывает
		if s.seq == seq {
			s.current = StatusMessage{}
			s.present = false
		}
	})
}

// Success - сообщение об успехе операции
func (s *Status) Success(text string) {
	s.Set(text, MessageSuccess)
}

// Error - сообщение об ошибке операции
func (s *Status) Error(text string) {
	s.Set(text, MessageError)
}

// Current возвращает текущее сообщение, если срок его показа не истёк
func (s *Status) Current() (StatusMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.present
}
