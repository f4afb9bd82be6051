package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tunebox/internal/auth"
	"tunebox/internal/shared"
)

func TestAuthenticate(t *testing.T) {
	issuer := auth.NewIssuer([]byte("test_secret"), time.Hour)

	probe := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := ClaimsFrom(r.Context()); ok {
			w.Header().Set("X-User", claims.UserID)
		}
		w.WriteHeader(http.StatusOK)
	})

	handler := Authenticate(issuer)(probe)

	t.Run("ValidToken", func(t *testing.T) {
		token, err := issuer.Issue("user-1", "test@example.com")
		if err != nil {
			t.Fatalf("failed to issue token: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if got := rec.Header().Get("X-User"); got != "user-1" {
			t.Errorf("expected claims for user-1, got %q", got)
		}
	})

	t.Run("NoHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Header().Get("X-User") != "" {
			t.Error("claims attached without a token")
		}
		if rec.Code != http.StatusOK {
			t.Errorf("public request blocked: %d", rec.Code)
		}
	})

	t.Run("BadToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not.a.jwt")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Header().Get("X-User") != "" {
			t.Error("claims attached for a garbage token")
		}
	})
}

func TestRequestLogger(t *testing.T) {
	logger := shared.NewLogger(nil)

	handler := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/music", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("middleware altered the status: %d", rec.Code)
	}
}
