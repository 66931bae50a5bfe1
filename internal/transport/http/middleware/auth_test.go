package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"slipgen/internal/domain/auth"
)

const testSecret = "test-secret"

func TestAuthAttachesOwnerFromBearerToken(t *testing.T) {
	token, err := auth.GenerateToken(testSecret, auth.Claims{OwnerID: "owner-1", Email: "jane@example.com", ParentMode: true}, time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var owner auth.OwnerContext
	var ok bool
	handler := Auth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		owner, ok = GetOwner(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !ok {
		t.Fatal("expected owner in context")
	}
	if owner.OwnerID != "owner-1" || !owner.ParentMode {
		t.Fatalf("unexpected owner context: %+v", owner)
	}
}

func TestAuthIgnoresInvalidToken(t *testing.T) {
	var ok bool
	handler := Auth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok = GetOwner(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if ok {
		t.Fatal("expected anonymous request for invalid token")
	}
}

func TestRequireOwnerRejectsAnonymous(t *testing.T) {
	handler := RequireOwner(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
