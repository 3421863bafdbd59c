package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"microdose-web/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	h, err := router.NewRouter(router.Options{}) // sin backend: modo dev
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

// cliente que no sigue redirects, para poder asertarlos
func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func TestHTTP_GuardsAndRedirects(t *testing.T) {
	ts := newTestServer(t)
	c := noRedirectClient()

	// 1) Sin sesión, /dashboard manda a /login con next
	{
		res, err := c.Get(ts.URL + "/dashboard")
		if err != nil {
			t.Fatal(err)
		}
		res.Body.Close()
		if res.StatusCode != http.StatusFound {
			t.Fatalf("expected 302, got %d", res.StatusCode)
		}
		loc, err := url.Parse(res.Header.Get("Location"))
		if err != nil || loc.Path != "/login" {
			t.Fatalf("unexpected redirect target %q", res.Header.Get("Location"))
		}
		if next := loc.Query().Get("next"); next != "/dashboard" {
			t.Fatalf("next = %q", next)
		}
	}

	// 2) Con sesión (header de dev), /login manda al dashboard
	{
		req, _ := http.NewRequest(http.MethodGet, ts.URL+"/login", nil)
		req.Header.Set("X-Debug-User-ID", "u-1")
		res, err := c.Do(req)
		if err != nil {
			t.Fatal(err)
		}
		res.Body.Close()
		if res.StatusCode != http.StatusFound || res.Header.Get("Location") != "/dashboard" {
			t.Fatalf("expected 302 to /dashboard, got %d -> %q", res.StatusCode, res.Header.Get("Location"))
		}
	}

	// 3) Rutas viejas
	for from, to := range map[string]string{
		"/protocols": "/dashboard/protocols",
		"/calendar":  "/dashboard/calendar",
		"/analytics": "/dashboard/analytics",
		"/community": "/community/posts",
	} {
		req, _ := http.NewRequest(http.MethodGet, ts.URL+from, nil)
		req.Header.Set("X-Debug-User-ID", "u-1")
		res, err := c.Do(req)
		if err != nil {
			t.Fatal(err)
		}
		res.Body.Close()
		if res.StatusCode != http.StatusMovedPermanently || res.Header.Get("Location") != to {
			t.Errorf("%s: expected 301 to %s, got %d -> %q", from, to, res.StatusCode, res.Header.Get("Location"))
		}
	}

	// 4) Cualquier otra cosa cae en el landing
	{
		res, err := c.Get(ts.URL + "/no-such-page")
		if err != nil {
			t.Fatal(err)
		}
		res.Body.Close()
		if res.StatusCode != http.StatusFound || res.Header.Get("Location") != "/" {
			t.Fatalf("expected 302 to /, got %d -> %q", res.StatusCode, res.Header.Get("Location"))
		}
	}

	// 5) /api sin sesión responde 401 JSON, no redirect
	{
		res, err := c.Get(ts.URL + "/api/calendar/items")
		if err != nil {
			t.Fatal(err)
		}
		defer res.Body.Close()
		if res.StatusCode != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", res.StatusCode)
		}
		if ct := res.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
			t.Fatalf("expected JSON error, got %q", ct)
		}
	}
}

func TestHTTP_EndToEnd_LoginAndProtocolLifecycle(t *testing.T) {
	ts := newTestServer(t)

	jar, _ := cookiejar.New(nil)
	c := &http.Client{Jar: jar}

	// 1) Login en modo dev: cualquier credencial con email sirve
	res, err := c.PostForm(ts.URL+"/login", url.Values{
		"email":    {"ana@example.com"},
		"password": {"secret"},
	})
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK { // siguió el redirect al dashboard
		t.Fatalf("login: expected 200 after redirect, got %d", res.StatusCode)
	}

	u, _ := url.Parse(ts.URL)
	var hasSession bool
	for _, ck := range jar.Cookies(u) {
		if ck.Name == "md_session" && ck.Value != "" {
			hasSession = true
		}
	}
	if !hasSession {
		t.Fatal("login did not set a session cookie")
	}

	// 2) Crear un protocolo
	res, err = c.PostForm(ts.URL+"/protocols/create", url.Values{
		"name":         {"Morning fadiman"},
		"type":         {"fadiman"},
		"start_date":   {"2026-01-05"},
		"cycle_length": {"3"},
		"substance":    {"psilocybin"},
		"dose":         {"0.2"},
		"dose_unit":    {"g"},
		"notify":       {"1"},
	})
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("create: expected 200 after redirect, got %d", res.StatusCode)
	}

	// 3) El feed del calendario lo proyecta
	res, err = c.Get(ts.URL + "/api/calendar/items")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("calendar items: expected 200, got %d", res.StatusCode)
	}

	var items []struct {
		ID         string `json:"id"`
		Kind       string `json:"kind"`
		Title      string `json:"title"`
		Background bool   `json:"background"`
		Href       string `json:"href"`
	}
	if err := json.NewDecoder(res.Body).Decode(&items); err != nil {
		t.Fatalf("decode items: %v", err)
	}

	var protocolID string
	var ranges, points int
	for _, it := range items {
		switch it.Kind {
		case "range":
			ranges++
			if !it.Background {
				t.Errorf("range item %s must be background", it.ID)
			}
			if it.Title == "Morning fadiman" {
				protocolID = strings.TrimPrefix(it.ID, "protocol-")
			}
		case "point":
			points++
		}
	}
	if ranges != 1 {
		t.Fatalf("expected 1 range item, got %d", ranges)
	}
	if points == 0 {
		t.Fatal("expected point items for the generated events")
	}
	if protocolID == "" {
		t.Fatal("protocol range item not found")
	}

	// 4) Borrarlo (sin eventos completados debe poder)
	res, err = c.PostForm(ts.URL+"/protocols/"+protocolID+"/delete", nil)
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()

	res, err = c.Get(ts.URL + "/api/protocols")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	var remaining []json.RawMessage
	if err := json.NewDecoder(res.Body).Decode(&remaining); err != nil {
		t.Fatalf("decode protocols: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected empty protocol list after delete, got %d", len(remaining))
	}

	// 5) Logout vuelve al landing y mata la sesión
	res, err = c.PostForm(ts.URL+"/logout", nil)
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()

	nr := noRedirectClient()
	nr.Jar = jar
	res, err = nr.Get(ts.URL + "/dashboard")
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect to login after logout, got %d", res.StatusCode)
	}
}
