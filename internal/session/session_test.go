package session

import (
	"context"
	"testing"

	"github.com/denmor86/upi-wallet/internal/config"
	"github.com/denmor86/upi-wallet/internal/logger"
	"github.com/denmor86/upi-wallet/internal/models"
	"github.com/google/go-cmp/cmp"
)

func initTestLogger(t *testing.T) {
	t.Helper()
	config := config.DefaultConfig()
	if err := logger.Initialize(config.LogLevel); err != nil {
		t.Fatalf("can't initialize logger: %v", err)
	}
}

func TestStore_DeriveState(t *testing.T) {
	initTestLogger(t)

	testCases := []struct {
		Name         string
		Stored       []byte
		ExpectedAuth bool
		ExpectedUser *models.Identity
	}{
		{
			Name:         "No stored record #1",
			Stored:       nil,
			ExpectedAuth: false,
			ExpectedUser: nil,
		},
		{
			Name:         "Malformed record #2",
			Stored:       []byte("{not json"),
			ExpectedAuth: false,
			ExpectedUser: nil,
		},
		{
			Name:         "Record without id #3",
			Stored:       []byte(`{"upiId":"u1@bank","name":"A"}`),
			ExpectedAuth: false,
			ExpectedUser: &models.Identity{UpiID: "u1@bank", Name: "A"},
		},
		{
			Name:         "Record without upiId #4",
			Stored:       []byte(`{"id":"u1","name":"A"}`),
			ExpectedAuth: false,
			ExpectedUser: &models.Identity{ID: "u1", Name: "A"},
		},
		{
			Name:         "Valid record #5",
			Stored:       []byte(`{"id":"u1","upiId":"u1@bank","name":"A"}`),
			ExpectedAuth: true,
			ExpectedUser: &models.Identity{ID: "u1", UpiID: "u1@bank", Name: "A"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			storage := NewMemoryStorage()
			if tc.Stored != nil {
				if err := storage.Save(context.Background(), tc.Stored); err != nil {
					t.Fatalf("save: %v", err)
				}
			}
			store := NewStore(storage)

			state := store.DeriveState(context.Background())

			if state.IsAuthenticated != tc.ExpectedAuth {
				t.Errorf("Expected IsAuthenticated '%v', got: '%v'", tc.ExpectedAuth, state.IsAuthenticated)
			}
			diff := cmp.Diff(tc.ExpectedUser, state.User)
			if len(diff) != 0 {
				t.Errorf("expected user mismatch:\n %s", diff)
			}
		})
	}
}

func TestStore_ReadIdentityMalformed(t *testing.T) {
	initTestLogger(t)

	storage := NewMemoryStorage()
	if err := storage.Save(context.Background(), []byte("garbage")); err != nil {
		t.Fatalf("save: %v", err)
	}
	store := NewStore(storage)

	// повреждённая запись не должна приводить к panic
	if identity := store.ReadIdentity(context.Background()); identity != nil {
		t.Errorf("Expected nil identity for malformed record, got: '%v'", identity)
	}
}

func TestStore_WriteReadClear(t *testing.T) {
	initTestLogger(t)

	store := NewStore(NewMemoryStorage())
	ctx := context.Background()

	identity := &models.Identity{ID: "u1", UpiID: "u1@bank", Name: "A"}
	if err := store.WriteIdentity(ctx, identity); err != nil {
		t.Fatalf("write: %v", err)
	}

	diff := cmp.Diff(identity, store.ReadIdentity(ctx))
	if len(diff) != 0 {
		t.Errorf("expected identity mismatch:\n %s", diff)
	}

	// новая запись заменяет предыдущую целиком
	replaced := &models.Identity{ID: "u2", UpiID: "u2@bank", Name: "B"}
	if err := store.WriteIdentity(ctx, replaced); err != nil {
		t.Fatalf("write: %v", err)
	}
	diff = cmp.Diff(replaced, store.ReadIdentity(ctx))
	if len(diff) != 0 {
		t.Errorf("expected identity mismatch:\n %s", diff)
	}

	if err := store.ClearIdentity(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if identity := store.ReadIdentity(ctx); identity != nil {
		t.Errorf("Expected nil identity after clear, got: '%v'", identity)
	}
}

func TestFileStorage(t *testing.T) {
	initTestLogger(t)

	path := t.TempDir() + "/nested/session.json"
	storage := NewFileStorage(path)
	ctx := context.Background()

	if _, err := storage.Load(ctx); err != ErrNoSession {
		t.Errorf("Expected ErrNoSession, got: '%v'", err)
	}

	if err := storage.Save(ctx, []byte(`{"id":"u1"}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := storage.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(data) != `{"id":"u1"}` {
		t.Errorf("Expected stored data, got: '%s'", data)
	}

	if err := storage.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := storage.Load(ctx); err != ErrNoSession {
		t.Errorf("Expected ErrNoSession after clear, got: '%v'", err)
	}
	// повторная очистка не считается ошибкой
	if err := storage.Clear(ctx); err != nil {
		t.Errorf("Expected no error on double clear, got: '%v'", err)
	}
}
