package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/scribemd/scribemd-go/internal/crypto"
)

func runAuth(t *testing.T, secret, authHeader string) (*httptest.ResponseRecorder, string, bool) {
	t.Helper()

	var username string
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, called = UsernameFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/save", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	JWTAuth(secret)(next).ServeHTTP(rec, req)
	return rec, username, called
}

func TestJWTAuthNoHeader(t *testing.T) {
	rec, _, called := runAuth(t, "secret", "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if called {
		t.Error("next handler called without a token")
	}
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	for _, header := range []string{"Token abc", "bearer abc", "Bearer "} {
		rec, _, called := runAuth(t, "secret", header)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, rec.Code)
		}
		if called {
			t.Errorf("header %q: next handler called", header)
		}
	}
}

func TestJWTAuthInvalidToken(t *testing.T) {
	rec, _, called := runAuth(t, "secret", "Bearer not-a-token")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if called {
		t.Error("next handler called with invalid token")
	}
}

func TestJWTAuthValidToken(t *testing.T) {
	token, err := crypto.GenerateToken("alice", "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	rec, username, called := runAuth(t, "secret", "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !called {
		t.Fatal("next handler not called for valid token")
	}
	if username != "alice" {
		t.Errorf("UsernameFromContext() = %q, want %q", username, "alice")
	}
}

func TestJWTAuthExpiredToken(t *testing.T) {
	token, err := crypto.GenerateToken("alice", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	rec, _, called := runAuth(t, "secret", "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 for expired token", rec.Code)
	}
	if called {
		t.Error("next handler called with expired token")
	}
}
