package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func serve(t *testing.T, path string, setup func(*http.Request)) int {
	t.Helper()
	e := echo.New()
	g := e.Group("/api", Middleware())
	g.GET("/stock", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	g.GET("/landing", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	g.GET("/landing/products/:index", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	g.GET("/landingx", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if setup != nil {
		setup(req)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec.Code
}

func TestBasicAuth(t *testing.T) {
	t.Setenv("AUTH_TYPE", "")
	t.Setenv("API_USER", "admin")
	t.Setenv("API_PASS", "secret")

	if code := serve(t, "/api/stock", nil); code != http.StatusUnauthorized {
		t.Errorf("no credentials = %d, want 401", code)
	}
	if code := serve(t, "/api/stock", func(r *http.Request) { r.SetBasicAuth("admin", "secret") }); code != http.StatusOK {
		t.Errorf("valid credentials = %d, want 200", code)
	}
	if code := serve(t, "/api/landing", nil); code != http.StatusOK {
		t.Errorf("skipped path = %d, want 200", code)
	}
	if code := serve(t, "/api/landing/products/2", nil); code != http.StatusOK {
		t.Errorf("skipped sub-path = %d, want 200", code)
	}
	if code := serve(t, "/api/landingx", nil); code != http.StatusUnauthorized {
		t.Errorf("prefix look-alike = %d, want 401", code)
	}
}

func TestKeyAuth(t *testing.T) {
	t.Setenv("AUTH_TYPE", "key")
	t.Setenv("API_KEY", "k1")

	if code := serve(t, "/api/stock", func(r *http.Request) { r.Header.Set("Authorization", "Bearer k1") }); code != http.StatusOK {
		t.Errorf("valid key = %d, want 200", code)
	}
	if code := serve(t, "/api/stock", func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }); code != http.StatusUnauthorized {
		t.Errorf("wrong key = %d, want 401", code)
	}
}
