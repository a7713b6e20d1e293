package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const testSecret = "test-secret"

func TestIssueParseRoundTrip(t *testing.T) {
	tok, err := Issue(testSecret, time.Hour, 42, "Asha", "asha@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	p, err := Parse(tok, testSecret)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.UserID != 42 || p.Name != "Asha" || p.Email != "asha@example.com" {
		t.Fatalf("principal = %+v", p)
	}
}

func TestParseWrongSecret(t *testing.T) {
	tok, err := Issue(testSecret, time.Hour, 1, "a", "a@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := Parse(tok, "other-secret"); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestParseExpiredToken(t *testing.T) {
	tok, err := Issue(testSecret, -time.Minute, 1, "a", "a@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := Parse(tok, testSecret); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestIssueEmptySecret(t *testing.T) {
	if _, err := Issue("", time.Hour, 1, "a", "a@example.com"); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := FromContext(r.Context())
		if !ok {
			t.Fatal("principal missing from context")
		}
		if p.UserID != 7 {
			t.Fatalf("userID = %d, want 7", p.UserID)
		}
		w.WriteHeader(http.StatusNoContent)
	})
	h := Middleware(testSecret, next)

	t.Run("no header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("wrong scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
		req.Header.Set("Authorization", "Basic abc")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		tok, err := Issue(testSecret, time.Hour, 7, "b", "b@example.com")
		if err != nil {
			t.Fatalf("Issue: %v", err)
		}
		req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("status = %d, want 204", rec.Code)
		}
	})
}
