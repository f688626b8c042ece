package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
)

type stubAuthService struct {
	loginFn          func(ctx context.Context, username, password string) (string, *domain.User, error)
	changePasswordFn func(ctx context.Context, username, currentPassword, newPassword string) (*domain.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	_, user, err := s.loginFn(ctx, username, password)
	return user, err
}

func (s *stubAuthService) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) (*domain.User, error) {
	return s.changePasswordFn(ctx, username, currentPassword, newPassword)
}

func (s *stubAuthService) TokenTTLSeconds() int64 {
	return 86400
}

func withPrincipal(c echo.Context, p domain.Principal) {
	c.Set("auth.principal", p)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, *domain.User, error) {
			if username != "admin" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return "token123", &domain.User{ID: "u1", Username: "admin", Role: domain.RoleAdmin, RequiresPasswordChange: true}, nil
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"admin","password":"secret"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}

	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	if resp["expiresIn"] != float64(86400) {
		t.Fatalf("expected expiresIn 86400, got %v", resp["expiresIn"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["id"] != "u1" || user["username"] != "admin" || user["role"] != "admin" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if user["requiresPasswordChange"] != true {
		t.Fatalf("expected requiresPasswordChange true, got %v", user["requiresPasswordChange"])
	}
	if _, leaked := user["passwordHash"]; leaked {
		t.Fatalf("password hash leaked in response")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"ghost","password":"bad"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Login(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if rec.Body.String() != "Invalid username or password" {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}

func TestAuthHandler_Login_BlankFields(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, *domain.User, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	for _, body := range []string{
		`{"username":"","password":"secret"}`,
		`{"username":"admin","password":""}`,
		`{"username":"   ","password":"secret"}`,
		`{}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		_ = handler.Login(c)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, *domain.User, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Login(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_ChangePassword_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		changePasswordFn: func(ctx context.Context, username, currentPassword, newPassword string) (*domain.User, error) {
			if username != "admin" || currentPassword != "old-pass" || newPassword != "new-pass" {
				t.Fatalf("unexpected args: %s %s %s", username, currentPassword, newPassword)
			}
			return &domain.User{ID: "u1", Username: "admin", Role: domain.RoleAdmin, RequiresPasswordChange: false}, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"currentPassword":"old-pass","newPassword":"new-pass","confirmPassword":"new-pass"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/change-password", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	withPrincipal(c, domain.Principal{UserID: "u1", Username: "admin", Role: domain.RoleAdmin})

	if err := handler.ChangePassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Password changed successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["requiresPasswordChange"] != false {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAuthHandler_ChangePassword_WrongCurrent(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		changePasswordFn: func(ctx context.Context, username, currentPassword, newPassword string) (*domain.User, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"currentPassword":"wrong","newPassword":"new-pass","confirmPassword":"new-pass"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/change-password", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	withPrincipal(c, domain.Principal{UserID: "u1", Username: "admin", Role: domain.RoleAdmin})

	_ = handler.ChangePassword(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if rec.Body.String() != "Current password is incorrect" {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}

func TestAuthHandler_ChangePassword_SameAsCurrent(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		changePasswordFn: func(ctx context.Context, username, currentPassword, newPassword string) (*domain.User, error) {
			return nil, domain.ErrPasswordUnchanged
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"currentPassword":"same","newPassword":"same","confirmPassword":"same"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/change-password", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	withPrincipal(c, domain.Principal{UserID: "u1", Username: "admin", Role: domain.RoleAdmin})

	_ = handler.ChangePassword(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if rec.Body.String() != "New password must be different from current password" {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}

func TestAuthHandler_ChangePassword_ConfirmMismatch(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		changePasswordFn: func(ctx context.Context, username, currentPassword, newPassword string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"currentPassword":"old-pass","newPassword":"new-pass","confirmPassword":"other"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/change-password", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	withPrincipal(c, domain.Principal{UserID: "u1", Username: "admin", Role: domain.RoleAdmin})

	_ = handler.ChangePassword(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if rec.Body.String() != "New password and confirmation do not match" {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}

func TestAuthHandler_ChangePassword_NoPrincipal(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		changePasswordFn: func(ctx context.Context, username, currentPassword, newPassword string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"currentPassword":"a","newPassword":"b","confirmPassword":"b"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/change-password", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ChangePassword(c)

	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
