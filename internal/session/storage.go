package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// SlotStorage - хранилище единственного слота с сериализованной записью сессии.
// Запись заменяется целиком, частичных обновлений не бывает.
type SlotStorage interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Clear(ctx context.Context) error
}

var (
	ErrNoSession = errors.New("no stored session")
)

// MemoryStorage - хранилище слота в памяти, используется в тестах
type MemoryStorage struct {
	mu      sync.RWMutex
	data    []byte
	present bool
}

// Создание хранилища в памяти
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Load(_ context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.present {
		return nil, ErrNoSession
	}
	data := make([]byte, len(s.data))
	copy(data, s.data)
	return data, nil
}

func (s *MemoryStorage) Save(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make([]byte, len(data))
	copy(s.data, data)
	s.present = true
	return nil
}

func (s *MemoryStorage) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	s.present = false
	return nil
}

// FileStorage - хранилище слота в файле на диске
type FileStorage struct {
	path string
}

// Создание файлового хранилища
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (s *FileStorage) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}
		return nil, err
	}
	return data, nil
}

func (s *FileStorage) Save(_ context.Context, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	// запись через временный файл, чтобы параллельный читатель не увидел обрезанную запись
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStorage) Clear(_ context.Context) error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
