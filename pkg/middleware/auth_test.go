package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"umrah-booking/internal/data/entity"
	"umrah-booking/internal/data/repository"
	"umrah-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type stubSessions struct {
	repository.SessionRepository
	sessions map[string]*entity.Session
}

func (s *stubSessions) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	return s.sessions[token], nil
}

type stubUsers struct {
	repository.UserRepository
	users map[uuid.UUID]*entity.User
}

func (s *stubUsers) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return s.users[id], nil
}

func newAuthStubs(role entity.UserRole) (*stubSessions, *stubUsers, string) {
	user := &entity.User{Base: entity.Base{ID: uuid.New()}, Name: "Fatimah", Role: role, IsVerified: true}
	token := uuid.New()
	sessions := &stubSessions{sessions: map[string]*entity.Session{
		token.String(): {UserID: user.ID, Token: token, ExpiresAt: time.Now().Add(time.Hour)},
	}}
	users := &stubUsers{users: map[uuid.UUID]*entity.User{user.ID: user}}
	return sessions, users, token.String()
}

// echoRole reports the role the middleware stored, or "anonymous".
var echoRole = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	role, ok := utils.GetRoleFromContext(r.Context())
	if !ok {
		role = "anonymous"
	}
	w.Write([]byte(role))
})

func TestAuthSession(t *testing.T) {
	sessions, users, token := newAuthStubs(entity.RoleUser)
	handler := AuthSession(sessions, users, zap.NewNop())(echoRole)

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{name: "missing header", status: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + token, status: http.StatusUnauthorized},
		{name: "malformed token", header: "Bearer not-a-uuid", status: http.StatusUnauthorized},
		{name: "unknown session", header: "Bearer " + uuid.NewString(), status: http.StatusUnauthorized},
		{name: "valid session", header: "Bearer " + token, status: http.StatusOK, body: "user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, rec.Code)
			}
			if tt.body != "" && rec.Body.String() != tt.body {
				t.Fatalf("expected body %q, got %q", tt.body, rec.Body.String())
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	log := zap.NewNop()

	for _, tc := range []struct {
		role   entity.UserRole
		status int
	}{
		{entity.RoleUser, http.StatusForbidden},
		{entity.RoleAdmin, http.StatusOK},
		{entity.RoleSuperAdmin, http.StatusOK},
	} {
		sessions, users, token := newAuthStubs(tc.role)
		handler := AuthSession(sessions, users, log)(Admin(log)(echoRole))

		req := httptest.NewRequest(http.MethodPost, "/api/cities", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != tc.status {
			t.Fatalf("role %s: expected %d, got %d", tc.role, tc.status, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	RequireRole(log, entity.RoleUser)(echoRole).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a session, got %d", rec.Code)
	}
}

func TestOptionalAuth(t *testing.T) {
	sessions, users, token := newAuthStubs(entity.RoleAdmin)
	handler := OptionalAuth(sessions, users, zap.NewNop())(echoRole)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/trips", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "anonymous" {
		t.Fatalf("anonymous request should pass through, got %d %q", rec.Code, rec.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/api/trips", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Body.String() != "admin" {
		t.Fatalf("expected the admin role in context, got %q", rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/trips", nil)
	req.Header.Set("Authorization", "Bearer "+uuid.NewString())
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("a bad token must still be rejected, got %d", rec.Code)
	}
}
