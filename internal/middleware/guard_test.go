package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"microdose-web/internal/ports/auth"
)

func TestRequireAuth_EscapesNextParam(t *testing.T) {
	h := RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("handler must not run without claims")
	}))

	// un path con caracteres reservados no puede romper la query string
	req := httptest.NewRequest(http.MethodGet, "/protocols/a&b", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d", rec.Code)
	}

	loc, err := url.Parse(rec.Header().Get("Location"))
	if err != nil {
		t.Fatalf("Location no parsea: %v", err)
	}
	if loc.Path != "/login" {
		t.Fatalf("path = %q", loc.Path)
	}
	if next := loc.Query().Get("next"); next != "/protocols/a&b" {
		t.Errorf("next = %q, el path original se perdió", next)
	}
}

func TestRequireAuth_PassesWithClaims(t *testing.T) {
	var called bool
	h := RequireAuth(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	ctx := context.WithValue(req.Context(), claimsKey, auth.Claims{UserID: "u-1"})
	h.ServeHTTP(httptest.NewRecorder(), req.WithContext(ctx))

	if !called {
		t.Fatal("handler no corrió con claims presentes")
	}
}

func TestSafeNext(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "/dashboard"},
		{"/daily/2024-01-05", "/daily/2024-01-05"},
		{"//evil.example", "/dashboard"},
		{"https://evil.example", "/dashboard"},
		{"/protocols/a&b", "/protocols/a&b"},
	}
	for _, c := range cases {
		if got := SafeNext(c.in); got != c.want {
			t.Errorf("SafeNext(%q) = %q, esperaba %q", c.in, got, c.want)
		}
	}
}
