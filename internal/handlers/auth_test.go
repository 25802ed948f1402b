package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/zenithpay/travel-api/internal/auth"
	dom "github.com/zenithpay/travel-api/internal/domain"
	"github.com/zenithpay/travel-api/internal/dto"
	"github.com/zenithpay/travel-api/internal/service"
)

type memUserRepo struct {
	nextID int64
	byID   map[int64]dom.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: map[int64]dom.User{}}
}

func (r *memUserRepo) Create(_ context.Context, email, passwordHash string) (dom.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return dom.User{}, &pgconn.PgError{Code: "23505"}
		}
	}
	r.nextID++
	u := dom.User{ID: r.nextID, Email: email, PasswordHash: passwordHash, CreatedAt: time.Now()}
	r.byID[u.ID] = u
	return u, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (dom.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (dom.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func newAuthTestRouter(t *testing.T) (*gin.Engine, *memUserRepo, *auth.Issuer) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	issuer, err := auth.NewIssuer("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}
	repo := newMemUserRepo()
	h := NewAuthHandler(service.NewUserService(repo, issuer))

	r := gin.New()
	r.POST("/api/v1/users", h.Register)
	r.POST("/api/v1/auth/login", h.Login)
	return r, repo, issuer
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint(t *testing.T) {
	r, repo, issuer := newAuthTestRouter(t)

	w := postJSON(r, "/api/v1/users", `{"email":"a@x.com","password":"pw"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (body %s)", w.Code, w.Body.String())
	}
	var resp dto.AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User.Email != "a@x.com" {
		t.Fatalf("expected a@x.com, got %q", resp.User.Email)
	}
	if subject, _, err := issuer.Verify(resp.Token); err != nil || subject != resp.User.ID {
		t.Fatalf("token does not verify for the new account: subject=%d err=%v", subject, err)
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Fatalf("response leaks password material: %s", w.Body.String())
	}

	// Second registration with the same email conflicts and creates nothing.
	w = postJSON(r, "/api/v1/users", `{"email":"a@x.com","password":"pw2"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("expected one account, got %d", len(repo.byID))
	}
}

func TestRegisterEndpointValidation(t *testing.T) {
	r, _, _ := newAuthTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing email", body: `{"password":"pw"}`},
		{name: "missing password", body: `{"email":"a@x.com"}`},
		{name: "invalid email", body: `{"email":"nope","password":"pw"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := postJSON(r, "/api/v1/users", tt.body); w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestLoginEndpoint(t *testing.T) {
	r, _, _ := newAuthTestRouter(t)

	if w := postJSON(r, "/api/v1/users", `{"email":"a@x.com","password":"pw"}`); w.Code != http.StatusCreated {
		t.Fatalf("register failed: %d", w.Code)
	}

	w := postJSON(r, "/api/v1/auth/login", `{"email":"a@x.com","password":"pw"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", w.Code, w.Body.String())
	}
	var resp dto.AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a token")
	}

	// Wrong password and unknown email both map to 401.
	if w := postJSON(r, "/api/v1/auth/login", `{"email":"a@x.com","password":"bad"}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if w := postJSON(r, "/api/v1/auth/login", `{"email":"nobody@x.com","password":"pw"}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
