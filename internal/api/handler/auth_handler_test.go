package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/smatech/auth-service/internal/core/domain"
	"github.com/smatech/auth-service/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput, role domain.Role) (*ports.AuthResult, error)
	authFn     func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	getUsersFn func(ctx context.Context, role domain.Role) ([]*domain.User, error)
	getByIDFn  func(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	updateFn   func(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput, role domain.Role) (*ports.AuthResult, error) {
	return s.registerFn(ctx, in, role)
}

func (s *stubAuthService) Authenticate(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.authFn(ctx, email, password)
}

func (s *stubAuthService) GetUser(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubAuthService) GetUserByID(ctx context.Context, id string, role domain.Role) (*domain.User, error) {
	return s.getByIDFn(ctx, id, role)
}

func (s *stubAuthService) GetUserByToken(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubAuthService) GetUsers(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	return s.getUsersFn(ctx, role)
}

func (s *stubAuthService) UpdateUser(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, id, in)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput, role domain.Role) (*ports.AuthResult, error) {
			if in.Email != "alice@example.com" || in.FirstName != "Alice" {
				t.Fatalf("unexpected input: %+v", in)
			}
			if role != domain.RoleCustomer {
				t.Fatalf("customer entry point must fix CUSTOMER role, got %s", role)
			}
			return &ports.AuthResult{Success: true, Token: "token123", User: &domain.User{Email: in.Email, Role: role}}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/auth/register",
		`{"email":"alice@example.com","password":"s3cret","first_name":"Alice"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true || resp["token"] != "token123" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestAuthHandler_RegisterAdmin_FixesAdminRole(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, _ ports.RegisterInput, role domain.Role) (*ports.AuthResult, error) {
			if role != domain.RoleAdmin {
				t.Fatalf("admin entry point must fix ADMIN role, got %s", role)
			}
			return &ports.AuthResult{Success: true, Token: "t"}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/auth/register-admin",
		`{"email":"root@example.com","password":"s3cret"}`)

	if err := h.RegisterAdmin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput, domain.Role) (*ports.AuthResult, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/v1/auth/register",
		`{"email":"bob@example.com","password":"s3cret"}`)

	err := h.Register(c)
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken to flow to the error handler, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput, domain.Role) (*ports.AuthResult, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	cases := []string{
		"not-json",
		`{"email":"not-an-email","password":"s3cret"}`,
		`{"email":"a@x.com"}`,
	}
	for _, body := range cases {
		c, _ := newTestContext(t, http.MethodPost, "/api/v1/auth/register", body)
		err := h.Register(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %v", body, err)
		}
	}
}

func TestAuthHandler_Authenticate_Success(t *testing.T) {
	stub := &stubAuthService{
		authFn: func(_ context.Context, email, pw string) (*ports.AuthResult, error) {
			if email != "alice@example.com" || pw != "s3cret" {
				t.Fatalf("unexpected args: %s %s", email, pw)
			}
			user := &domain.User{Email: email, Role: domain.RoleCustomer, PasswordHash: "bcrypt-hash"}
			return &ports.AuthResult{Success: true, Token: "token123", User: user}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/auth/authenticate",
		`{"email":"alice@example.com","password":"s3cret"}`)

	if err := h.Authenticate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	if strings.Contains(body, "bcrypt-hash") || strings.Contains(body, "password_hash") {
		t.Fatalf("password hash must never be serialized: %s", body)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token in envelope: %+v", resp)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok || data["email"] != "alice@example.com" {
		t.Fatalf("expected authenticated user in data: %+v", resp)
	}
}

func TestAuthHandler_Authenticate_Unauthorized(t *testing.T) {
	stub := &stubAuthService{
		authFn: func(context.Context, string, string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/v1/auth/authenticate",
		`{"email":"ghost@example.com","password":"wrong"}`)

	if err := h.Authenticate(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Roles(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/auth/roles", "")
	if err := h.Roles(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp rolesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data) != 2 || resp.Data[0] != domain.RoleCustomer || resp.Data[1] != domain.RoleAdmin {
		t.Fatalf("unexpected roles: %v", resp.Data)
	}
}

func TestAuthHandler_GetCustomer_ScopesRole(t *testing.T) {
	stub := &stubAuthService{
		getByIDFn: func(_ context.Context, id string, role domain.Role) (*domain.User, error) {
			if id != "42" || role != domain.RoleCustomer {
				t.Fatalf("unexpected args: %s %s", id, role)
			}
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/api/v1/auth/get-user/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := h.GetCustomer(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthHandler_UpdateUser_PartialPayload(t *testing.T) {
	stub := &stubAuthService{
		updateFn: func(_ context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
			if id != "42" {
				t.Fatalf("unexpected id: %s", id)
			}
			if in.FirstName == nil || *in.FirstName != "Jane" {
				t.Fatalf("first_name must be set: %+v", in)
			}
			if in.LastName != nil || in.PhoneNumber != nil || in.Address != nil {
				t.Fatalf("absent fields must stay nil: %+v", in)
			}
			return &domain.User{ID: id, FirstName: "Jane", Role: domain.RoleCustomer}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPatch, "/api/v1/auth/update-user/42", `{"first_name":"Jane"}`)
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := h.UpdateUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
