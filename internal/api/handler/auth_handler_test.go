package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/socialpulse/feed-system/internal/core/domain"
)

type stubAuthService struct {
	signupUser *domain.User
	signupErr  error
	loginToken string
	loginUser  *domain.User
	loginErr   error

	gotName, gotEmail, gotPassword string
}

func (s *stubAuthService) Signup(_ context.Context, name, email, password string) (*domain.User, error) {
	s.gotName, s.gotEmail, s.gotPassword = name, email, password
	return s.signupUser, s.signupErr
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, *domain.User, error) {
	s.gotEmail, s.gotPassword = email, password
	return s.loginToken, s.loginUser, s.loginErr
}

func newJSONContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func testUser() *domain.User {
	return &domain.User{
		ID:       "u-1",
		Name:     "Alice",
		Email:    "alice@example.com",
		Avatar:   domain.DefaultAvatar,
		Role:     domain.RoleUser,
		JoinedAt: time.Now().UTC(),
	}
}

func TestAuthHandler_Signup_Created(t *testing.T) {
	svc := &stubAuthService{signupUser: testUser()}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/signup",
		`{"name":"Alice","email":"alice@example.com","password":"secret1"}`)

	if err := h.Signup(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.User.ID != "u-1" || resp.User.Email != "alice@example.com" {
		t.Errorf("unexpected user in response: %+v", resp.User)
	}
	if resp.Token != "" {
		t.Error("signup must not return a token")
	}
	if svc.gotName != "Alice" || svc.gotPassword != "secret1" {
		t.Errorf("service received wrong arguments: %q %q", svc.gotName, svc.gotPassword)
	}
}

func TestAuthHandler_Signup_ValidationFailures(t *testing.T) {
	cases := []struct {
		name, body string
	}{
		{"missing name", `{"email":"a@b.com","password":"secret1"}`},
		{"bad email", `{"name":"Alice","email":"not-an-email","password":"secret1"}`},
		{"short password", `{"name":"Alice","email":"a@b.com","password":"abc"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewAuthHandler(&stubAuthService{})
			c, _ := newJSONContext(t, http.MethodPost, "/auth/signup", tc.body)

			err := h.Signup(c)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok || httpErr.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %v", err)
			}
		})
	}
}

func TestAuthHandler_Signup_MalformedJSON(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, _ := newJSONContext(t, http.MethodPost, "/auth/signup", `{not json`)

	err := h.Signup(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Signup_ConflictPassesThrough(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{signupErr: domain.ErrEmailTaken})
	c, _ := newJSONContext(t, http.MethodPost, "/auth/signup",
		`{"name":"Alice","email":"alice@example.com","password":"secret1"}`)

	// Domain errors flow to the central HTTP error handler untouched.
	if err := h.Signup(c); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthHandler_Login_ReturnsTokenAndUser(t *testing.T) {
	svc := &stubAuthService{loginToken: "signed.jwt.token", loginUser: testUser()}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"whatever"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Token != "signed.jwt.token" {
		t.Errorf("expected token in response, got %q", resp.Token)
	}
	if resp.User.ID != "u-1" {
		t.Errorf("unexpected user: %+v", resp.User)
	}
}

func TestAuthHandler_Login_UnknownEmailPassesThrough(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrUserNotFound})
	c, _ := newJSONContext(t, http.MethodPost, "/auth/login",
		`{"email":"nobody@example.com","password":"x"}`)

	if err := h.Login(c); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
