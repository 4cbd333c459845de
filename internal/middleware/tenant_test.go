package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brandini/brandini/internal/middleware"
)

func newResolver() *middleware.Resolver {
	return middleware.NewResolver("brandini.tn", "brandini.test")
}

func TestResolveStorefrontSubdomain(t *testing.T) {
	out := newResolver().Resolve("shoppy.brandini.tn", "/product/x")
	if out.Kind != middleware.RewriteStorefront {
		t.Fatalf("expected rewrite, got %v", out.Kind)
	}
	if out.Subdomain != "shoppy" {
		t.Fatalf("expected subdomain shoppy, got %s", out.Subdomain)
	}
}

func TestResolveStorefrontExemptPaths(t *testing.T) {
	for _, path := range []string{"/api/foo", "/static/logo.png", "/favicon.ico"} {
		out := newResolver().Resolve("shoppy.brandini.tn", path)
		if out.Kind != middleware.PassThrough {
			t.Errorf("%s: expected pass-through, got %v", path, out.Kind)
		}
	}
}

func TestResolveStripsPort(t *testing.T) {
	out := newResolver().Resolve("shoppy.brandini.test:3000", "/")
	if out.Kind != middleware.RewriteStorefront || out.Subdomain != "shoppy" {
		t.Fatalf("expected rewrite for shoppy, got %+v", out)
	}
}

func TestResolveReservedLabels(t *testing.T) {
	for _, host := range []string{"www.brandini.tn", "api.brandini.tn", "dashboard.brandini.tn"} {
		out := newResolver().Resolve(host, "/some/path")
		if out.Kind == middleware.RewriteStorefront {
			t.Errorf("%s: reserved label must not resolve to a storefront", host)
		}
	}
}

func TestResolveDashboardWrongHostRedirects(t *testing.T) {
	out := newResolver().Resolve("brandini.tn", "/dashboard/orders")
	if out.Kind != middleware.Redirect {
		t.Fatalf("expected redirect, got %v", out.Kind)
	}
	if out.Host != "dashboard.brandini.tn" || out.Path != "/dashboard/orders" {
		t.Fatalf("unexpected redirect target %s%s", out.Host, out.Path)
	}
}

func TestResolveDashboardOnDashboardHostPasses(t *testing.T) {
	out := newResolver().Resolve("dashboard.brandini.tn", "/dashboard/orders")
	if out.Kind != middleware.PassThrough {
		t.Fatalf("expected pass-through, got %v", out.Kind)
	}
}

func TestResolveApexRootRedirectsToDashboard(t *testing.T) {
	out := newResolver().Resolve("brandini.tn", "/")
	if out.Kind != middleware.Redirect {
		t.Fatalf("expected redirect, got %v", out.Kind)
	}
	if out.Host != "dashboard.brandini.tn" || out.Path != "/dashboard" {
		t.Fatalf("unexpected redirect target %s%s", out.Host, out.Path)
	}
}

func TestResolveApexNonRootPassesThrough(t *testing.T) {
	out := newResolver().Resolve("brandini.tn", "/about")
	if out.Kind != middleware.PassThrough {
		t.Fatalf("expected pass-through, got %v", out.Kind)
	}
}

func TestResolveLocalhostRootRedirectsToDevDashboard(t *testing.T) {
	out := newResolver().Resolve("localhost:8080", "/")
	if out.Kind != middleware.Redirect {
		t.Fatalf("expected redirect, got %v", out.Kind)
	}
	if out.Host != "dashboard.brandini.test" {
		t.Fatalf("expected dev dashboard host, got %s", out.Host)
	}
}

func TestResolveUnknownHostPassesThrough(t *testing.T) {
	out := newResolver().Resolve("example.org", "/whatever")
	if out.Kind != middleware.PassThrough {
		t.Fatalf("expected permissive pass-through, got %v", out.Kind)
	}
}

func TestTenantResolverRewritesRequest(t *testing.T) {
	var gotPath, gotSubdomain string
	h := middleware.TenantResolver(newResolver())(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotSubdomain = middleware.SubdomainFromContext(r.Context())
	}))

	req := httptest.NewRequest("GET", "http://shoppy.brandini.tn/product/x", http.NoBody)
	h.ServeHTTP(httptest.NewRecorder(), req)

	if gotPath != "/storefront/product/x" {
		t.Fatalf("expected rewritten path, got %s", gotPath)
	}
	if gotSubdomain != "shoppy" {
		t.Fatalf("expected subdomain shoppy in context, got %s", gotSubdomain)
	}
}

func TestTenantResolverRedirects(t *testing.T) {
	h := middleware.TenantResolver(newResolver())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run on redirect")
	}))

	req := httptest.NewRequest("GET", "http://brandini.tn/", http.NoBody)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("expected 307, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "http://dashboard.brandini.tn/dashboard" {
		t.Fatalf("unexpected location %s", loc)
	}
}
