package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func TestDoJSON_DecodesBody_AndSendsQuery(t *testing.T) {
	var gotPath, gotQuery, gotAuth string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Fadiman"}`))
	}))
	defer ts.Close()

	c, err := New(ts.URL, 2*time.Second)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var out struct {
		Name string `json:"name"`
	}
	q := url.Values{}
	q.Set("days", "30")

	err = c.DoJSON(context.Background(), http.MethodGet, "/protocols", q,
		map[string]string{"Authorization": "Bearer tok-1"}, nil, &out)
	if err != nil {
		t.Fatalf("DoJSON: %v", err)
	}

	if gotPath != "/protocols" {
		t.Fatalf("expected path /protocols, got %s", gotPath)
	}
	if gotQuery != "days=30" {
		t.Fatalf("expected query days=30, got %s", gotQuery)
	}
	if gotAuth != "Bearer tok-1" {
		t.Fatalf("expected auth header, got %q", gotAuth)
	}
	if out.Name != "Fadiman" {
		t.Fatalf("expected decoded name, got %q", out.Name)
	}
}

func TestDoJSON_Non2xx_ExtractsServerMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"protocol has completed events"}`))
	}))
	defer ts.Close()

	c, _ := New(ts.URL, 2*time.Second)

	err := c.DoJSON(context.Background(), http.MethodDelete, "/protocols/p1", nil, nil, nil, nil)
	if err == nil {
		t.Fatalf("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "protocol has completed events" {
		t.Fatalf("unexpected message: %q", apiErr.Message)
	}

	// ErrorMessage debe devolver el texto del servidor tal cual.
	if got := ErrorMessage(err, "generic"); got != "protocol has completed events" {
		t.Fatalf("ErrorMessage: got %q", got)
	}
	if got := ErrorMessage(errors.New("boom"), "generic"); got != "generic" {
		t.Fatalf("ErrorMessage fallback: got %q", got)
	}
}

func TestDoJSON_RelativePathRequiresBaseURL(t *testing.T) {
	c, _ := New("", time.Second)
	err := c.DoJSON(context.Background(), http.MethodGet, "/protocols", nil, nil, nil, nil)
	if err == nil {
		t.Fatalf("expected error for relative path without BaseURL")
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(&APIError{StatusCode: http.StatusNotFound}) {
		t.Fatalf("expected true for 404")
	}
	if IsNotFound(&APIError{StatusCode: http.StatusBadRequest}) {
		t.Fatalf("expected false for 400")
	}
	if IsNotFound(errors.New("nope")) {
		t.Fatalf("expected false for plain error")
	}
}
