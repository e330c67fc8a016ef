package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"roomblock/internal/delivery/http/helpers"
)

type mockAuthService struct {
	token string
	err   error
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.token, nil
}

func TestAuthController_Login_Success(t *testing.T) {
	ctrl := NewAuthController(discardLogger(), &mockAuthService{token: "signed-token"})

	body := `{"email":"admin@example.com","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	w := httptest.NewRecorder()

	ctrl.Login(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp struct {
		Data LoginResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Data.Token != "signed-token" || resp.Data.TokenType != "Bearer" {
		t.Fatalf("unexpected data: %+v", resp.Data)
	}
}

func TestAuthController_Login_BadCredentials(t *testing.T) {
	ctrl := NewAuthController(discardLogger(), &mockAuthService{err: errors.New("invalid credentials")})

	body := `{"email":"admin@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	w := httptest.NewRecorder()

	ctrl.Login(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
	var resp helpers.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != helpers.ErrCodeUnauthorized {
		t.Fatalf("unexpected error body: %+v", resp.Error)
	}
}

func TestAuthController_Login_MissingFields(t *testing.T) {
	ctrl := NewAuthController(discardLogger(), &mockAuthService{token: "signed-token"})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":""}`))
	w := httptest.NewRecorder()

	ctrl.Login(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}
