package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brandini/brandini/internal/middleware"
)

func TestSessionGuardRedirectsWithoutCookie(t *testing.T) {
	h := middleware.SessionGuard(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run without credential")
	}))

	req := httptest.NewRequest("GET", "http://dashboard.brandini.tn/dashboard/orders", http.NoBody)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard/login?redirect=%2Fdashboard%2Forders" {
		t.Fatalf("unexpected location %s", loc)
	}
}

func TestSessionGuardPassesWithCookie(t *testing.T) {
	called := false
	h := middleware.SessionGuard(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	req := httptest.NewRequest("GET", "http://dashboard.brandini.tn/dashboard/orders", http.NoBody)
	req.AddCookie(&http.Cookie{Name: middleware.AuthCookieName, Value: "some-token"})
	h.ServeHTTP(httptest.NewRecorder(), req)

	if !called {
		t.Fatal("expected handler to run with cookie present")
	}
}

func TestSessionGuardLoginExempt(t *testing.T) {
	called := false
	h := middleware.SessionGuard(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	req := httptest.NewRequest("GET", "http://dashboard.brandini.tn/dashboard/login", http.NoBody)
	h.ServeHTTP(httptest.NewRecorder(), req)

	if !called {
		t.Fatal("login path must render without credential")
	}
}

func TestSessionGuardIgnoresNonDashboardPaths(t *testing.T) {
	called := false
	h := middleware.SessionGuard(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	req := httptest.NewRequest("GET", "http://shoppy.brandini.tn/product/x", http.NoBody)
	h.ServeHTTP(httptest.NewRecorder(), req)

	if !called {
		t.Fatal("non-dashboard paths must pass through")
	}
}
