package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shashiranjanraj/vanijya/pkg/router"
)

func noop(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func TestNamedRoutes(t *testing.T) {
	r := router.New()
	r.Get("/products/{id}", "products.show", noop)

	path, ok := r.Path("products.show")
	if !ok {
		t.Fatal("named route not found")
	}
	if path != "/products/{id}" {
		t.Errorf("Path = %q", path)
	}

	url, err := r.URL("products.show", map[string]string{"id": "7"})
	if err != nil {
		t.Fatalf("URL: %v", err)
	}
	if url != "/products/7" {
		t.Errorf("URL = %q", url)
	}

	if _, err := r.URL("products.show", nil); err == nil {
		t.Error("URL with missing params should fail")
	}
	if _, err := r.URL("nope", nil); err == nil {
		t.Error("URL for unknown route should fail")
	}
}

func TestGroupPrefix(t *testing.T) {
	r := router.New()
	g := r.Group("/orders")
	g.Post("", "orders.place", noop)
	g.Get("/{id}/total", "orders.total", noop)

	if path, _ := r.Path("orders.place"); path != "/orders" {
		t.Errorf("orders.place path = %q", path)
	}
	if path, _ := r.Path("orders.total"); path != "/orders/{id}/total" {
		t.Errorf("orders.total path = %q", path)
	}

	req := httptest.NewRequest(http.MethodGet, "/orders/3/total", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("group route not served, code = %d", rec.Code)
	}
}

func TestRoutesInRegistrationOrder(t *testing.T) {
	r := router.New()
	r.Get("/a", "a", noop)
	r.Post("/b", "b", noop)

	infos := r.Routes()
	if len(infos) != 2 {
		t.Fatalf("Routes() len = %d", len(infos))
	}
	if infos[0].Name != "a" || infos[1].Name != "b" {
		t.Errorf("unexpected order: %+v", infos)
	}
}

func TestPerRouteMiddleware(t *testing.T) {
	r := router.New()
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Tagged", "1")
			next.ServeHTTP(w, req)
		})
	}
	r.Get("/tagged", "tagged", noop, mw)
	r.Get("/plain", "plain", noop)

	req := httptest.NewRequest(http.MethodGet, "/tagged", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)
	if rec.Header().Get("X-Tagged") != "1" {
		t.Error("per-route middleware did not run")
	}

	req = httptest.NewRequest(http.MethodGet, "/plain", nil)
	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)
	if rec.Header().Get("X-Tagged") != "" {
		t.Error("middleware leaked to another route")
	}
}
