package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"roomblock/internal/domain"
)

type mockUserRepository struct {
	users map[string]*domain.AdminUser
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	if u, ok := m.users[email]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*domain.AdminUser, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type mockHasher struct {
	compareErr error
}

func (m *mockHasher) GenerateSalt() (string, error)              { return "salt", nil }
func (m *mockHasher) Hash(salt, password string) (string, error) { return "hash:" + password, nil }
func (m *mockHasher) Compare(hash, salt, password string) error  { return m.compareErr }

type mockIssuer struct {
	lastUserID string
	lastEmail  string
	lastExpiry time.Duration
}

func (m *mockIssuer) Issue(userID, email string, expiry time.Duration) (string, error) {
	m.lastUserID = userID
	m.lastEmail = email
	m.lastExpiry = expiry
	return "signed-token", nil
}

func TestAuthService_Login(t *testing.T) {
	repo := &mockUserRepository{users: map[string]*domain.AdminUser{
		"admin@example.com": {ID: "u1", Email: "admin@example.com", PasswordHash: "h", Salt: "s"},
	}}

	t.Run("success", func(t *testing.T) {
		issuer := &mockIssuer{}
		svc := NewAuthService(repo, &mockHasher{}, issuer, time.Hour)

		token, err := svc.Login(context.Background(), "  Admin@Example.com ", "secret")
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		if token != "signed-token" {
			t.Fatalf("token = %q", token)
		}
		if issuer.lastUserID != "u1" || issuer.lastEmail != "admin@example.com" {
			t.Fatalf("token issued for %q/%q", issuer.lastUserID, issuer.lastEmail)
		}
		if issuer.lastExpiry != time.Hour {
			t.Fatalf("expiry = %v", issuer.lastExpiry)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		svc := NewAuthService(repo, &mockHasher{}, &mockIssuer{}, time.Hour)

		if _, err := svc.Login(context.Background(), "nobody@example.com", "secret"); err == nil {
			t.Fatal("expected error for unknown email")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		hasher := &mockHasher{compareErr: errors.New("mismatch")}
		svc := NewAuthService(repo, hasher, &mockIssuer{}, time.Hour)

		_, errUnknown := svc.Login(context.Background(), "nobody@example.com", "secret")
		_, errWrong := svc.Login(context.Background(), "admin@example.com", "wrong")
		if errWrong == nil {
			t.Fatal("expected error for wrong password")
		}
		if errUnknown.Error() != errWrong.Error() {
			t.Fatalf("lookup and compare failures must be indistinguishable: %q vs %q", errUnknown, errWrong)
		}
	})
}
